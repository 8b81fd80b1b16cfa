package compare

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestCollated(t *testing.T) {
	t.Parallel()

	words := []string{"zebra", "Äpfel", "apple", "Banane"}

	t.Run("byte order puts accented letters last", func(t *testing.T) {
		t.Parallel()

		sorted := slices.Clone(words)
		slices.Sort(sorted)

		assert.Equal(t, "Äpfel", sorted[len(sorted)-1])
	})

	t.Run("german collation keeps accented letters with their base letter", func(t *testing.T) {
		t.Parallel()

		less := Collated(language.German)
		sorted := slices.Clone(words)
		slices.SortFunc(sorted, func(a, b string) int {
			switch {
			case less(a, b):
				return -1
			case less(b, a):
				return 1
			default:
				return 0
			}
		})

		assert.Equal(t, "zebra", sorted[len(sorted)-1])
		assert.Equal(t, []string{"Äpfel", "apple", "Banane", "zebra"}, sorted)
	})
}
