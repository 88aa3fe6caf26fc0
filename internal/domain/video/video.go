package video

// Recommendation is a supplementary video suggested for a document.
type Recommendation struct {
	ID           string
	Title        string
	Channel      string
	ThumbnailURL string
	VideoURL     string
}
