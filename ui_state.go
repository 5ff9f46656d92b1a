package main

type uiState struct {
	mode       mode
	command    CommandInput
	noticeMsg  string
	noticeKind noticeKind
	noticeSeq  int
	picker     pickerUI
	syncSeq    int    // invalidates pending share-sync flushes
	shareLink  string // last flushed view string
	zoomTime   bool   // pan/zoom keys drive the time chart instead of the scatter
}
