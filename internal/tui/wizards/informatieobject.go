package wizards

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/guidodo/mdto/internal/tui"
	"github.com/guidodo/mdto/internal/tui/components"
	"github.com/guidodo/mdto/pkg/mdto"
)

// Form field labels, named after the MDTO elements they fill.
const (
	fieldNaam          = "naam"
	fieldKenmerk       = "identificatieKenmerk"
	fieldBron          = "identificatieBron"
	fieldArchiefvormer = "archiefvormer"
	fieldBeperking     = "beperkingGebruik"
)

// BeperkingGebruikBegrippenlijst is the begrippenlijst of the
// beperkingGebruikType written by the wizard.
const BeperkingGebruikBegrippenlijst = "Begrippenlijst BeperkingGebruik MDTO"

// Waarderingen lists the labels of the MDTO waardering begrippenlijst.
func Waarderingen() []components.Option {
	return []components.Option{
		{Label: "V", Description: "Vernietigen", Value: "V"},
		{Label: "B", Description: "Blijvend bewaren", Value: "B"},
		{Label: "O", Description: "Nog te bepalen", Value: "O"},
	}
}

// InformatieobjectValues holds the mandatory values of a new informatieobject.
type InformatieobjectValues struct {
	Naam             string
	Kenmerk          string
	Bron             string
	Archiefvormer    string
	Waardering       string
	BeperkingGebruik string
}

// Missing reports whether a mandatory value is still empty.
func (v InformatieobjectValues) Missing() bool {
	for _, s := range []string{v.Naam, v.Kenmerk, v.Bron, v.Archiefvormer, v.Waardering, v.BeperkingGebruik} {
		if strings.TrimSpace(s) == "" {
			return true
		}
	}
	return false
}

// Entity returns the informatieobject described by v.
func (v InformatieobjectValues) Entity() *mdto.Entity {
	return mdto.New(mdto.Informatieobject).
		Set("identificatie", mdto.NewIdentificatie(v.Kenmerk, v.Bron)).
		Set("naam", v.Naam).
		Set("waardering", mdto.NewBegrip(v.Waardering,
			mdto.NewVerwijzing(mdto.WaarderingBegrippenlijst, nil), "")).
		Set("archiefvormer", mdto.NewVerwijzing(v.Archiefvormer, nil)).
		Set("beperkingGebruik", mdto.NewBeperkingGebruik(
			mdto.NewBegrip(v.BeperkingGebruik, mdto.NewVerwijzing(BeperkingGebruikBegrippenlijst, nil), "")))
}

// InformatieobjectResult holds the result of the wizard.
type InformatieobjectResult struct {
	Cancelled bool
	Values    InformatieobjectValues
}

type informatieobjectStep int

const (
	stepFields informatieobjectStep = iota
	stepWaardering
	stepReview
	stepDone
)

// InformatieobjectWizard collects the mandatory fields of an informatieobject.
type InformatieobjectWizard struct {
	step       informatieobjectStep
	form       components.Form
	waardering components.Selector
	values     InformatieobjectValues
	result     InformatieobjectResult
	keys       tui.KeyMap
	width      int
}

// NewInformatieobjectWizard returns a wizard prefilled with initial.
func NewInformatieobjectWizard(initial InformatieobjectValues) InformatieobjectWizard {
	return InformatieobjectWizard{
		step:       stepFields,
		form:       newFieldsForm(initial),
		waardering: newWaarderingSelector(initial.Waardering),
		values:     initial,
		keys:       tui.DefaultKeyMap(),
		width:      80,
	}
}

func newFieldsForm(initial InformatieobjectValues) components.Form {
	beperking := initial.BeperkingGebruik
	if beperking == "" {
		beperking = "nvt"
	}
	return components.NewForm("Nieuw informatieobject",
		components.NewTextField(fieldNaam, "Verlenen kapvergunning").
			WithRequired(true).WithValue(initial.Naam),
		components.NewTextField(fieldKenmerk, "abcd-1234").
			WithRequired(true).WithValue(initial.Kenmerk),
		components.NewTextField(fieldBron, "Corsa (Geldermalsen)").
			WithRequired(true).WithValue(initial.Bron),
		components.NewTextField(fieldArchiefvormer, "Geldermalsen").
			WithRequired(true).WithValue(initial.Archiefvormer),
		components.NewTextField(fieldBeperking, "nvt").
			WithRequired(true).WithValue(beperking),
	)
}

func newWaarderingSelector(current string) components.Selector {
	return components.NewSelector("Waardering", Waarderingen()).
		WithValue(current).
		WithShowHelp(false)
}

// Init implements tea.Model.
func (w InformatieobjectWizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model.
func (w InformatieobjectWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = size.Width
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, w.keys.Quit) {
		w.result.Cancelled = true
		return w, tea.Quit
	}

	switch w.step {
	case stepFields:
		return w.updateFields(msg)
	case stepWaardering:
		return w.updateWaardering(msg)
	case stepReview:
		return w.updateReview(msg)
	}
	return w, nil
}

func (w InformatieobjectWizard) updateFields(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.form.Update(msg)
	w.form = model.(components.Form)

	switch {
	case w.form.Cancelled():
		w.result.Cancelled = true
		return w, tea.Quit
	case w.form.Submitted():
		w.values.Naam = w.form.Value(fieldNaam)
		w.values.Kenmerk = w.form.Value(fieldKenmerk)
		w.values.Bron = w.form.Value(fieldBron)
		w.values.Archiefvormer = w.form.Value(fieldArchiefvormer)
		w.values.BeperkingGebruik = w.form.Value(fieldBeperking)
		w.waardering = newWaarderingSelector(w.values.Waardering)
		w.step = stepWaardering
		return w, nil
	}
	return w, cmd
}

func (w InformatieobjectWizard) updateWaardering(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, _ := w.waardering.Update(msg)
	w.waardering = model.(components.Selector)

	switch {
	case w.waardering.Cancelled():
		w.form = newFieldsForm(w.values)
		w.step = stepFields
		return w, w.form.Init()
	case w.waardering.Submitted():
		w.values.Waardering = w.waardering.Value()
		w.step = stepReview
	}
	return w, nil
}

func (w InformatieobjectWizard) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}
	switch {
	case key.Matches(keyMsg, w.keys.Select):
		w.result.Values = w.values
		w.step = stepDone
		return w, tea.Quit
	case key.Matches(keyMsg, w.keys.Back):
		w.waardering = newWaarderingSelector(w.values.Waardering)
		w.step = stepWaardering
	}
	return w, nil
}

// View implements tea.Model.
func (w InformatieobjectWizard) View() string {
	switch w.step {
	case stepFields:
		return w.viewFields()
	case stepWaardering:
		return w.waardering.View() + tui.HelpStyle.Render("\n"+w.keys.HelpText())
	case stepReview:
		return w.viewReview()
	}
	return ""
}

func (w InformatieobjectWizard) viewFields() string {
	var b strings.Builder
	b.WriteString(w.form.View())

	if naam := w.form.Field(fieldNaam); naam != nil && naam.Len() > mdto.MaxNaamLength {
		b.WriteString("\n")
		b.WriteString(tui.WarningStyle.Render(
			fmt.Sprintf("naam is %d characters; at most %d is advised", naam.Len(), mdto.MaxNaamLength)))
	}
	return b.String()
}

func (w InformatieobjectWizard) viewReview() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Controleren"))
	b.WriteString("\n")
	rows := []struct{ label, value string }{
		{"naam", w.values.Naam},
		{"identificatieKenmerk", w.values.Kenmerk},
		{"identificatieBron", w.values.Bron},
		{"archiefvormer", w.values.Archiefvormer},
		{"waardering", w.values.Waardering},
		{"beperkingGebruik", w.values.BeperkingGebruik},
	}
	for _, row := range rows {
		b.WriteString(tui.LabelStyle.Render(fmt.Sprintf("%-22s", row.label)))
		b.WriteString(row.value)
		b.WriteString("\n")
	}
	b.WriteString(tui.HelpStyle.Render("enter create • esc back • ctrl+c quit"))
	return b.String()
}

// Result returns the wizard result.
func (w InformatieobjectWizard) Result() InformatieobjectResult {
	return w.result
}

// RunInformatieobjectWizard runs the wizard on the terminal.
func RunInformatieobjectWizard(initial InformatieobjectValues) (InformatieobjectResult, error) {
	p := tea.NewProgram(NewInformatieobjectWizard(initial))

	model, err := p.Run()
	if err != nil {
		return InformatieobjectResult{Cancelled: true}, err
	}
	return model.(InformatieobjectWizard).Result(), nil
}
