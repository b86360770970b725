// Package demo contains the destination screens behind the built-in
// menu links.
package demo

import "github.com/jask/lazynav/internal/history"

type visitsMsg []history.Visit

type countsMsg []history.TitleCount

type clearedMsg struct{}

type savedMsg struct{}

type errMsg struct{ error }
