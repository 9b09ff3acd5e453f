package execution

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DOM contract of the quiz page
const (
	SelectorStartScreen  = "#start-screen"
	SelectorTile         = ".question-set-tile"
	SelectorGameScreen   = "#game-screen"
	SelectorChoice       = ".choice-button"
	SelectorResultScreen = "#result-screen"
	SelectorNextButton   = "#next-button"
	SelectorFinishScreen = "#finish-screen"
)

const (
	startVisibleScript = `document.getElementById('start-screen').style.display !== 'none'`
	tileKeysScript     = `Array.from(document.querySelectorAll('.question-set-tile')).map(el => el.dataset.key)`
)

// ChoiceSelector addresses a choice by zero-based index
func ChoiceSelector(index int) string {
	return fmt.Sprintf("%s:nth-child(%d)", SelectorChoice, index+1)
}

// TileSelector addresses the start-screen tile of a test case
func TileSelector(key string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(key)
	return fmt.Sprintf("[data-key='%s']", escaped)
}

func presenceScript(selector string) string {
	return fmt.Sprintf("document.querySelector(%s) !== null", jsString(selector))
}

func clickScript(selector string) string {
	return fmt.Sprintf("document.querySelector(%s).click()", jsString(selector))
}

// jsString renders s as a JavaScript string literal
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
