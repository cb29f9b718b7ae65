// Package patch applies partial updates: a nil source pointer means
// "field absent, keep the stored value".
package patch

import "time"

func String(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func Int(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func Bool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func Time(dst *time.Time, src *time.Time) {
	if src != nil {
		*dst = *src
	}
}
