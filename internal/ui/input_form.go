package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/contentply/contentply/internal/domain"
	"github.com/contentply/contentply/internal/logging"
)

const maxContentChars = 50000

// InputFormResult is what the user asked to repurpose
type InputFormResult struct {
	Content string
	IsURL   bool
}

// InputForm collects the content to repurpose: a mode select, then either a
// URL input or a multi-line text area.
type InputForm struct {
	Completed bool
	form      *huh.Form
	mode      string
	text      string
	url       string
}

// NewInputForm creates the input form, pre-filled with previous so a failed
// submission can be corrected without retyping.
func NewInputForm(previous InputFormResult) *InputForm {
	f := &InputForm{mode: string(domain.ModeText)}
	if previous.IsURL {
		f.mode = string(domain.ModeURL)
		f.url = previous.Content
	} else {
		f.text = previous.Content
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What do you want to repurpose?").
				Options(
					huh.NewOption("Paste text", string(domain.ModeText)),
					huh.NewOption("Article URL", string(domain.ModeURL)),
				).
				Value(&f.mode),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Article URL").
				Placeholder("https://example.com/your-article").
				Value(&f.url),
		).WithHideFunc(func() bool { return f.mode != string(domain.ModeURL) }),
		huh.NewGroup(
			huh.NewText().
				Title("Your content").
				Description("Paste a blog post, transcript or notes").
				CharLimit(maxContentChars).
				Lines(10).
				Value(&f.text),
		).WithHideFunc(func() bool { return f.mode != string(domain.ModeText) }),
	)

	return f
}

func (f *InputForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *InputForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		f.Completed = true
		result := f.Result()
		logging.Logger.Debug("Input form completed", "is_url", result.IsURL, "length", len(result.Content))
		return f, nil
	}

	return f, cmd
}

func (f *InputForm) View() string {
	return f.form.View()
}

// Result returns what the user entered
func (f *InputForm) Result() InputFormResult {
	if f.mode == string(domain.ModeURL) {
		return InputFormResult{Content: f.url, IsURL: true}
	}
	return InputFormResult{Content: f.text, IsURL: false}
}
