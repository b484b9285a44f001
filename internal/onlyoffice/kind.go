package onlyoffice

import "strings"

// Editor document kinds per the ONLYOFFICE API contract.
const (
	KindWord  = "word"
	KindCell  = "cell"
	KindSlide = "slide"
)

var kindByExt = map[string]string{
	".docx": KindWord,
	".doc":  KindWord,
	".odt":  KindWord,
	".rtf":  KindWord,
	".txt":  KindWord,
	".xlsx": KindCell,
	".xls":  KindCell,
	".ods":  KindCell,
	".csv":  KindCell,
	".pptx": KindSlide,
	".ppt":  KindSlide,
	".odp":  KindSlide,
}

// KindForExt classifies a document extension into the editor kind that
// handles it. Unknown extensions open in the word processor.
func KindForExt(ext string) string {
	if k, ok := kindByExt[strings.ToLower(ext)]; ok {
		return k
	}
	return KindWord
}
