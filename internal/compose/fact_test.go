package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactSuppressedWhenValueEmpty(t *testing.T) {
	assert.Nil(t, Fact("Sted", ""))

	n := Fact("Sted", "Kongsvinger")
	require.NotNil(t, n)
	assert.True(t, n.ContainsText("Sted"))
	assert.True(t, n.ContainsText("Kongsvinger"))
}

func TestAreaValueFormatting(t *testing.T) {
	assert.Empty(t, areaValue(nil))

	area := 4200
	assert.Equal(t, "4200 m²", areaValue(&area))
}

func TestContractValueFormatting(t *testing.T) {
	assert.Empty(t, contractValue(nil))

	value := 312.5
	assert.Equal(t, "312.5 MNOK", contractValue(&value))

	whole := 100.0
	assert.Equal(t, "100 MNOK", contractValue(&whole))
}

func TestBoxDropsNilChildren(t *testing.T) {
	n := Box(Style{}, Fact("Sted", ""), Fact("Tid", "2024"), nil)
	assert.Len(t, n.Children, 1)
}
