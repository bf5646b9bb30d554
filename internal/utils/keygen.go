package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// leadingAlnum liefert bis zu n alphanumerische Zeichen vom Anfang des Namens, großgeschrieben.
func leadingAlnum(name string, n int) string {
	var b strings.Builder
	count := 0
	for _, r := range name {
		if count >= n {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
			count++
		}
	}
	return b.String()
}

// ProjectKeyFromName leitet den Projektschlüssel aus dem Projektnamen ab.
// "FlowOps Project" -> "FLOW"; bleibt nach dem Strippen nichts übrig, gilt "PROJ".
func ProjectKeyFromName(name string) string {
	key := leadingAlnum(name, 4)
	if key == "" {
		return "PROJ"
	}
	return key
}

// TaskPrefix leitet das Präfix des Aufgabenschlüssels aus dem Projektnamen ab
// (bewusst aus dem Namen, nicht aus dem Projektschlüssel).
func TaskPrefix(projectName string) string {
	prefix := leadingAlnum(projectName, 4)
	if prefix == "" {
		return "TASK"
	}
	return prefix
}

// TaskKey baut den menschenlesbaren Aufgabenschlüssel, z.B. "FLOW-1".
func TaskKey(projectName string, seq int) string {
	return fmt.Sprintf("%s-%d", TaskPrefix(projectName), seq)
}
