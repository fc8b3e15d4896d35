// =============================================================================
// CSV/Excel Converter - Application State
// =============================================================================
//
// State holds what the user has chosen so far: the conversion mode, the
// selected files, one label per formatting category and the destination.
// It only changes through the transition methods below, each of which keeps
// the mode-filtered file list consistent with the selection.
//
// =============================================================================

package batch

import (
	"github.com/paluigi/csv2excel/internal/converter"
	"github.com/paluigi/csv2excel/internal/options"
	"github.com/paluigi/csv2excel/internal/types"
	"github.com/paluigi/csv2excel/pkg/utils"
)

// State is the selection of one batch run. It is not safe for concurrent use.
type State struct {
	reg         *options.Registry
	mode        options.Mode
	modeSet     bool
	selection   types.Selection
	selected    []string
	files       []string
	destination string
}

// NewState creates a state with the given default labels.
// Empty labels are replaced with the first entry of their table.
func NewState(reg *options.Registry, defaults types.Selection) *State {
	return &State{
		reg:       reg,
		selection: reg.Fill(defaults),
	}
}

// SelectMode sets the conversion mode by label or symbol and refilters the
// selected files. A listed mode whose target cannot be written is rejected
// with a *types.UnavailableModeError; the previous mode is kept.
func (s *State) SelectMode(value string) error {
	label, err := s.reg.ModeLabel(value)
	if err != nil {
		return err
	}
	mode, _ := s.reg.Mode(label)
	if err := converter.Supported(mode.Origin(), mode.Target()); err != nil {
		return &types.UnavailableModeError{Label: label, Err: err}
	}
	s.mode = mode
	s.modeSet = true
	s.refilter()
	return nil
}

// SelectFiles replaces the file selection.
func (s *State) SelectFiles(paths []string) {
	s.selected = append([]string(nil), paths...)
	s.refilter()
}

// SetOption sets the label of one formatting category. A symbol is accepted
// in place of the label.
func (s *State) SetOption(category types.Category, value string) error {
	label, err := s.reg.Label(category, value)
	if err != nil {
		return err
	}
	s.selection = s.selection.With(category, label)
	return nil
}

// SetDestination sets the destination folder.
func (s *State) SetDestination(dir string) {
	s.destination = dir
}

// Mode returns the selected conversion mode.
func (s *State) Mode() (options.Mode, bool) {
	return s.mode, s.modeSet
}

// Selected returns the raw file selection.
func (s *State) Selected() []string {
	return append([]string(nil), s.selected...)
}

// Files returns the selected files matching the mode's origin extension.
func (s *State) Files() []string {
	return append([]string(nil), s.files...)
}

// DisplayFiles returns the shortened list of matching files.
func (s *State) DisplayFiles() []string {
	return utils.FormatFileList(s.files)
}

// Selection returns the selected labels.
func (s *State) Selection() types.Selection {
	return s.selection
}

// Destination returns the destination folder.
func (s *State) Destination() string {
	return s.destination
}

func (s *State) refilter() {
	if !s.modeSet {
		s.files = nil
		return
	}
	s.files = utils.FilterByExtension(s.selected, s.mode.Origin())
}
