// Package report renders command results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"

	"github.com/educreate/gamecore/internal/catalog"
	"github.com/educreate/gamecore/internal/gameoptions"
	"github.com/educreate/gamecore/internal/templates"
	"github.com/educreate/gamecore/internal/validator"
)

// Printer writes styled lines to w. Styling is stripped unless w is a
// terminal.
type Printer struct {
	w     io.Writer
	plain bool
	err   error
}

// NewPrinter returns a printer for w.
func NewPrinter(w io.Writer) *Printer {
	plain := true
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		plain = !term.IsTerminal(f.Fd())
	}
	return &Printer{w: w, plain: plain}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

func (p *Printer) println(s string) {
	if p.err != nil {
		return
	}
	if p.plain {
		s = ansi.Strip(s)
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *Printer) printf(format string, args ...any) {
	p.println(fmt.Sprintf(format, args...))
}

func severityStyle(s validator.Severity) string {
	switch s {
	case validator.SeverityError:
		return errorStyle.Render("✗")
	case validator.SeverityWarning:
		return warningStyle.Render("!")
	default:
		return dimStyle.Render("i")
	}
}

func (p *Printer) findings(title string, fs []validator.ValidationError) {
	if len(fs) == 0 {
		return
	}
	p.println(sectionStyle.Render(fmt.Sprintf("%s (%d)", title, len(fs))))
	for _, f := range fs {
		p.printf("  %s %s %s", severityStyle(f.Severity), dimStyle.Render(f.Field), f.Message)
		if f.Suggestion != "" {
			p.println("    " + hintStyle.Render(f.Suggestion))
		}
	}
}

// Report prints a content review.
func (p *Printer) Report(r validator.Report) error {
	p.println(titleStyle.Render("內容檢查"))
	if r.Publishable() {
		p.println(okStyle.Render("✓ 可以發布"))
	} else {
		p.println(errorStyle.Render("✗ 無法發布"))
	}
	if len(r.Result.MissingFields) > 0 {
		p.printf("缺少欄位: %s", strings.Join(r.Result.MissingFields, ", "))
	}

	p.findings("錯誤", r.Result.Errors)
	p.findings("警告", r.Result.Warnings)
	p.findings("重複詞彙", r.Duplicates)
	if r.Game != "" {
		req := catalog.RequirementFor(r.Game)
		if len(r.Compatibility) == 0 {
			p.printf("%s %s 相容", okStyle.Render("✓"), req.Name)
		}
		p.findings(req.Name+" 相容性", r.Compatibility)
	}

	if len(r.Suggestions) > 0 {
		p.println(sectionStyle.Render("建議"))
		for _, s := range r.Suggestions {
			p.println("  • " + s)
		}
	}
	return p.err
}

// Templates prints template summaries.
func (p *Printer) Templates(ts []catalog.Template) error {
	for _, t := range ts {
		var b strings.Builder
		fmt.Fprintf(&b, "%s %s %s\n", t.Icon, titleStyle.Render(t.Name), dimStyle.Render(string(t.ID)))
		b.WriteString(t.Description + "\n")
		items := fmt.Sprintf("%d-%d 個項目", t.MinItems, t.MaxItems)
		if t.RequiresEvenItems {
			items += "，需偶數"
		}
		fmt.Fprintf(&b, "%s · %s · %s · %s", t.Category, t.Difficulty, t.EstimatedTime, items)
		if len(t.Features) > 0 {
			b.WriteString("\n" + hintStyle.Render(strings.Join(t.Features, "、")))
		}
		p.println(cardStyle.Render(b.String()))
	}
	return p.err
}

// Styles prints the visual styles of a template.
func (p *Printer) Styles(styles []templates.VisualStyle) error {
	for _, s := range styles {
		c := s.Colors
		p.printf("%s%s%s%s %s %s %s",
			swatch(c.Primary), swatch(c.Secondary), swatch(c.Background), swatch(c.Text),
			titleStyle.Render(s.Name), dimStyle.Render(s.ID), s.Category)
	}
	return p.err
}

// Compatibility prints whether a template accepts n items.
func (p *Printer) Compatibility(t catalog.Template, n int, ok bool) error {
	if ok {
		p.printf("%s %s 可以使用 %d 個項目", okStyle.Render("✓"), t.Name, n)
	} else {
		p.printf("%s %s 不能使用 %d 個項目", errorStyle.Render("✗"), t.Name, n)
	}
	return p.err
}

// Configuration prints a template configuration and its problems.
func (p *Printer) Configuration(cfg templates.Configuration, errs []error) error {
	p.printf("%s %s", titleStyle.Render(string(cfg.TemplateID)), dimStyle.Render(cfg.VisualStyle))
	for _, opt := range templates.Options(cfg.TemplateID) {
		if v, ok := cfg.GameOptions[opt.ID]; ok {
			p.printf("  %s = %v", opt.Name, v)
		}
	}
	if len(errs) == 0 {
		p.println(okStyle.Render("✓ 設定有效"))
		return p.err
	}
	for _, err := range errs {
		p.printf("  %s %v", errorStyle.Render("✗"), err)
	}
	return p.err
}

// Definitions prints option definitions grouped by category.
func (p *Printer) Definitions(defs []gameoptions.Definition) error {
	for _, cat := range gameoptions.Categories() {
		var group []gameoptions.Definition
		for _, d := range defs {
			if d.Category == cat {
				group = append(group, d)
			}
		}
		if len(group) == 0 {
			continue
		}
		p.println(sectionStyle.Render(string(cat)))
		for _, d := range group {
			p.printf("  %s %s %s", titleStyle.Render(d.Name), dimStyle.Render(d.ID), describe(d))
			if len(d.Dependencies) > 0 {
				deps := make([]string, len(d.Dependencies))
				for i, dep := range d.Dependencies {
					deps[i] = fmt.Sprintf("%s=%v", dep.OptionID, dep.Value)
				}
				p.println("    " + hintStyle.Render("需要 "+strings.Join(deps, ", ")))
			}
		}
	}
	return p.err
}

func describe(d gameoptions.Definition) string {
	s := fmt.Sprintf("%s 預設 %v", d.Type, d.DefaultValue)
	if d.Unit != "" {
		s += d.Unit
	}
	if d.Min != nil && d.Max != nil {
		s += fmt.Sprintf(" [%v-%v]", *d.Min, *d.Max)
	}
	if len(d.Choices) > 0 {
		values := make([]string, len(d.Choices))
		for i, c := range d.Choices {
			values[i] = fmt.Sprint(c.Value)
		}
		s += " (" + strings.Join(values, "|") + ")"
	}
	return s
}

// OptionsResult prints the outcome of option validation.
func (p *Printer) OptionsResult(res gameoptions.Result) error {
	if res.IsValid {
		p.println(okStyle.Render("✓ 選項有效"))
		return p.err
	}
	for _, e := range res.Errors {
		p.printf("  %s %s", errorStyle.Render("✗"), e)
	}
	return p.err
}
