// Package translate renders user-visible messages in the user's language.
package translate

import (
	"github.com/golang/glog"
	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is the language used when no user locale can be determined.
const Fallback = "en-US"

var printer *message.Printer

func init() {
	printer = NewPrinter()
}

// NewPrinter builds a message printer matched to the user's locales.
func NewPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		glog.Warningf("hackasm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{Fallback}
	}

	tag := message.MatchLanguage(locales...)
	if tag == language.Und {
		tag = language.MustParse(Fallback)
	}

	return message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
