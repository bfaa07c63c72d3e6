package theme

import "github.com/appengine-ltd/mystery-number/internal/config"

type Typography struct {
	Title      int32
	Body       int32
	Feedback   int32
	LineFactor float32
}

func TypographyFrom(f config.Fonts) Typography {
	return Typography{
		Title:      f.Title,
		Body:       f.Body,
		Feedback:   f.Feedback,
		LineFactor: 1.3,
	}
}
