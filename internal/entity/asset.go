package entity

// Image is a raster asset printed on an invoice. Type is the gofpdf image type: "JPG", "PNG" or "GIF".
type Image struct {
	Data []byte
	Type string
}

// Assets are the optional images of a rendering. Nil images are skipped.
type Assets struct {
	Logo   *Image
	Footer *Image
}
