package slot

import "unicode/utf16"

var courtImages = []string{
	"https://images.unsplash.com/photo-1626224583764-f87db24ac4ea?w=800&q=80",
	"https://images.unsplash.com/photo-1640505817878-6fe5a0a0e7b6?w=800&q=80",
	"https://images.unsplash.com/photo-1599058917765-a780eda07a3e?w=800&q=80",
	"https://images.unsplash.com/photo-1622279457486-62dcc4a431d6?w=800&q=80",
	"https://images.unsplash.com/photo-1613918431703-aa50889e3be8?w=800&q=80",
	"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&q=80",
	"https://images.unsplash.com/photo-1565992441121-4367f2137543?w=800&q=80",
	"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=800&q=80",
}

// CourtImage picks a stock court photo for seed. The same seed always yields the
// same photo, so a court keeps its picture across reloads and across sources.
func CourtImage(seed string) string {
	var h uint32
	for _, unit := range utf16.Encode([]rune(seed)) {
		h = (h*31 + uint32(unit)) & 0x7fffffff
	}
	return courtImages[h%uint32(len(courtImages))]
}
