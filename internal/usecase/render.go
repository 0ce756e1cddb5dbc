package usecase

import (
	"fmt"
	"html"

	"namebot/internal/domain"
)

// Button labels and commands the dialogue reacts to.
const (
	CommandStart      = "start"
	ButtonMale        = "👨 Male"
	ButtonFemale      = "👩 Female"
	ButtonRegenerate  = "🔄 Regenerate"
	ButtonBackToMenu  = "⬅️ Back to Menu"
	textChooseCountry = "Zaɓi ƙasa:"
	textChooseGender  = "Ka zaɓi %s. Yanzu zaɓi jinsi (gender):"
	textGeneratedName = "Sunan Bogi: <b>%s</b>"
	textUseButtons    = "Don Allah yi amfani da maballan da aka bayar don yin zaɓi."
	textFailure       = "An samu matsala. Don Allah a sake gwadawa daga baya."
)

func countryPrompt(labels []string) domain.Reply {
	rows := make([][]string, 0, len(labels))
	for _, l := range labels {
		rows = append(rows, []string{l})
	}
	return domain.Reply{Text: textChooseCountry, Keyboard: rows}
}

func genderPrompt(country string) domain.Reply {
	return domain.Reply{
		Text: fmt.Sprintf(textChooseGender, country),
		Keyboard: [][]string{
			{ButtonMale, ButtonFemale},
			{ButtonBackToMenu},
		},
	}
}

func nameResult(fullName string) domain.Reply {
	return domain.Reply{
		Text: fmt.Sprintf(textGeneratedName, html.EscapeString(fullName)),
		HTML: true,
		Keyboard: [][]string{
			{ButtonRegenerate},
			{ButtonBackToMenu},
		},
	}
}

func useButtonsNotice() domain.Reply {
	return domain.Reply{Text: textUseButtons, Quote: true}
}

// FailureReply is the generic notice shown when a request could not be
// completed. The conversation state is left as it was, so the user can retry.
func FailureReply() domain.Reply {
	return domain.Reply{Text: textFailure}
}

// genderFromButton maps the gender buttons to a gender.
func genderFromButton(text string) (domain.Gender, bool) {
	switch text {
	case ButtonMale:
		return domain.GenderMale, true
	case ButtonFemale:
		return domain.GenderFemale, true
	default:
		return "", false
	}
}
