package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	assert.Equal(t, "madol-doova", FromName("  Madol Doova "))
	assert.Equal(t, "the-c-programming-language-2nd-ed", FromName("The C Programming Language (2nd ed.)"))
	assert.Equal(t, "book", FromName("මඩොල් දූව"))
	assert.Equal(t, "gamperaliya-12", WithID("Gamperaliya", 12))
}
