package baan

import (
	"bytes"
	"errors"

	"github.com/PuerkitoBio/goquery"
)

var ErrTokenNotFound = errors.New("anti-forgery token not found")

func parseDoc(body []byte) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}

// formToken extracts the per-page anti-forgery token the site requires on
// every form submission.
func formToken(doc *goquery.Document) (string, error) {
	v, ok := doc.Find(`input[name="_token"]`).First().Attr("value")
	if !ok {
		return "", ErrTokenNotFound
	}
	return v, nil
}

// inputValue returns the value of the named input, or fallback when the
// input (or its value) is absent.
func inputValue(doc *goquery.Document, name, fallback string) string {
	v, ok := doc.Find(`input[name="` + name + `"]`).First().Attr("value")
	if !ok {
		return fallback
	}
	return v
}

// firstOptionValue returns the value of the first option of the named
// select, or fallback when the select has no options.
func firstOptionValue(doc *goquery.Document, name, fallback string) string {
	v, ok := doc.Find(`select[name="` + name + `"] option`).First().Attr("value")
	if !ok {
		return fallback
	}
	return v
}
