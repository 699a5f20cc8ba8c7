package tmx

// Image is a reference to graphics used by a tileset or image layer. Source
// is the image path joined with the document's base directory; when the
// image is embedded in the document instead, Data holds the decoded bytes
// and Source is empty.
type Image struct {
	Format string
	Source string
	Width  int
	Height int
	Trans  *Color
	Data   []byte
}
