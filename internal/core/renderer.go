package core

type RenderedPage struct {
	HTML    []byte
	CSS     []byte
	CSSName string
}
