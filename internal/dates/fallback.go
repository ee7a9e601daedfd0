package dates

import (
	"strings"
	"sync"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	appLog "recurrent/internal/log"
)

// WhenFallback is the calendar-arithmetic collaborator backed by
// olebedev/when with the English and common rule sets.
type WhenFallback struct {
	once   sync.Once
	parser *when.Parser
}

func NewWhenFallback() *WhenFallback {
	return &WhenFallback{}
}

func (w *WhenFallback) init() {
	w.once.Do(func() {
		w.parser = when.New(nil)
		w.parser.Add(en.All...)
		w.parser.Add(common.All...)
	})
}

// Resolve succeeds only when the recognized phrase spans all of text.
func (w *WhenFallback) Resolve(text string, ref time.Time) (time.Time, bool) {
	w.init()
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	res, err := w.parser.Parse(text, ref)
	if err != nil {
		appLog.Debug("when fallback failed", "text", text, "err", err)
		return time.Time{}, false
	}
	if res == nil || res.Index != 0 || len(strings.TrimSpace(res.Text)) != len(text) {
		return time.Time{}, false
	}
	appLog.Debug("when fallback matched", "text", text, "time", res.Time)
	return res.Time, true
}
