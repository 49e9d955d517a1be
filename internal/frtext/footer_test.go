package frtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFooterLines(t *testing.T) {
	input := "Jean Levi's 501 pour femme.\n\nMarque : Levi's\nCouleur : bleu\nSKU AB123\nMarque très belle\n\n#levis"
	expected := "Jean Levi's 501 pour femme.\n\nMarque très belle\n\n#levis"

	assert.Equal(t, expected, StripFooterLines(input))
}

func TestStripFooterLines_PrefixNotSubstring(t *testing.T) {
	// "Marque très belle" must survive: the rule matches the exact
	// "marque :" prefix, not the word anywhere in the line.
	kept := "Marque très belle"
	assert.Equal(t, kept, StripFooterLines(kept))

	assert.Equal(t, "", StripFooterLines("marque : levi's"))
	assert.Equal(t, "", StripFooterLines("  MARQUE : Levi's"))
}

func TestStripFooterLines_SKUPrefix(t *testing.T) {
	assert.Equal(t, "", StripFooterLines("SKU : AB123"))
	assert.Equal(t, "", StripFooterLines("sku interne 42"))
}

func TestStripFooterLines_PreservesBlankLines(t *testing.T) {
	input := "ligne 1\n\n\nligne 2"
	assert.Equal(t, input, StripFooterLines(input))
}

func TestStripFooterLines_Empty(t *testing.T) {
	assert.Equal(t, "", StripFooterLines(""))
}
