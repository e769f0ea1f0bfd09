// Package preview rasterizes sticker elements into images.
//
// It is meant for tests, thumbnails and command-line tools; interactive
// hosts draw elements with their own toolkit from the state the element
// reports. Text is set with golang.org/x/image/font and mapped through the
// element's transform with golang.org/x/image/draw. The border and handles
// are filled with golang.org/x/image/vector.
//
// # Example usage
//
//	r := preview.New()
//	img, err := r.Image(e, 800, 600)
//	if err != nil {
//	    return err
//	}
//	err = preview.SavePNG("sticker.png", img)
package preview
