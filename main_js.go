//go:build js

package main

import (
	"strings"
	"syscall/js"
)

// checkAnswersFunction backs checkAnswers(text[, answers]). answers is an
// optional JS array of strings; the built-in key is used without it.
func checkAnswersFunction(this js.Value, p []js.Value) any {
	if len(p) == 0 {
		return js.ValueOf("checkAnswers: missing program output")
	}
	answers := DefaultAnswerKey.Answers
	if len(p) > 1 && p[1].Type() == js.TypeObject {
		answers = make([]string, p[1].Length())
		for i := range answers {
			answers[i] = p[1].Index(i).String()
		}
	}

	rep := check(answers, splitTokens(p[0].String()))
	var out strings.Builder
	style, err := newReportStyle(&out, colorNever)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	if err := printReport(&out, rep, style, true); err != nil {
		return js.ValueOf(err.Error())
	}
	return js.ValueOf(out.String())
}

func main() {
	c := make(chan struct{})

	js.Global().Set("checkAnswers", js.FuncOf(checkAnswersFunction))

	<-c
}
