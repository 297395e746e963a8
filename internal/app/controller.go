// Package app owns the authoritative skyset document. It loads and
// reloads it from storage, decides when an external change should replace
// it, and saves it atomically.
package app

import (
	"time"

	"github.com/dbmrq/skyset/internal/editor"
	skyerrors "github.com/dbmrq/skyset/internal/errors"
	"github.com/dbmrq/skyset/internal/field"
	"github.com/dbmrq/skyset/internal/logging"
	"github.com/dbmrq/skyset/internal/skyset"
	"github.com/dbmrq/skyset/internal/store"
)

// Controller holds the document, the editor state and the raw file content
// seen at the last successful load or save. It is driven from a single
// goroutine and does no locking.
type Controller struct {
	path    string
	doc     *skyset.Skyset
	editor  *editor.State
	lastRaw string
	now     func() time.Time
	logger  *logging.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the clock used to stamp updated_at.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithLogger sets the logger. The global logger is used by default.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// New loads the document at path. It never fails: a missing, blank,
// unreadable or unparsable file yields the default document.
func New(path string, opts ...Option) *Controller {
	c := &Controller{
		path: path,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.Global()
	}
	c.logger = c.logger.With("path", path)

	c.load()
	c.editor = editor.New(c.doc)
	return c
}

func (c *Controller) load() {
	outcome, err := store.Read(c.path)
	if err != nil {
		c.logger.Warn("load failed, using defaults", "error", err)
		outcome = store.ReadOutcome{Doc: skyset.Default()}
	}
	if outcome.ParseErr != nil {
		c.logger.Warn("document did not parse, using defaults", "error", outcome.ParseErr)
	}
	c.doc = outcome.Doc
	c.lastRaw = outcome.Raw
	c.logger.Debug("loaded document", "bytes", len(outcome.Raw))
}

// Path returns the document path.
func (c *Controller) Path() string {
	return c.path
}

// Document returns a copy of the committed document.
func (c *Controller) Document() *skyset.Skyset {
	return c.doc.Clone()
}

// LastRaw returns the raw content seen at the last load, reload or save.
func (c *Controller) LastRaw() string {
	return c.lastRaw
}

// Editor returns the editor state for read access.
func (c *Controller) Editor() *editor.State {
	return c.editor
}

// Field returns the selected field.
func (c *Controller) Field() field.ID {
	return c.editor.Current()
}

// Input returns the editor buffer.
func (c *Controller) Input() string {
	return c.editor.Input()
}

// IsEditing reports whether the buffer holds an uncommitted value.
func (c *Controller) IsEditing() bool {
	return c.editor.IsEditing(c.doc)
}

// Value returns the committed value of id.
func (c *Controller) Value(id field.ID) string {
	return field.Get(c.doc, id)
}

// Next selects the following field.
func (c *Controller) Next() {
	c.editor.Next(c.doc)
}

// Previous selects the preceding field.
func (c *Controller) Previous() {
	c.editor.Previous(c.doc)
}

// PushChar appends r to the buffer.
func (c *Controller) PushChar(r rune) {
	c.editor.PushChar(r)
}

// PopChar removes the last character from the buffer.
func (c *Controller) PopChar() {
	c.editor.PopChar()
}

// Apply commits the buffer to the selected field. A validation error leaves
// the document unchanged and the buffer intact.
func (c *Controller) Apply() error {
	if err := c.editor.Apply(c.doc); err != nil {
		c.logger.Debug("apply rejected", "field", c.editor.Current().Key(), "error", err)
		return err
	}
	return nil
}

// Toggle toggles the selected field when it is a toggle field.
func (c *Controller) Toggle() {
	c.editor.Toggle(c.doc)
}

// Reset replaces the document with defaults. Storage is untouched until the
// next Save.
func (c *Controller) Reset() {
	c.doc = skyset.Default()
	c.editor.Sync(c.doc)
}

// ApplyOverrides sets each present entry in field order. Invalid values are
// dropped and the rest still apply.
func (c *Controller) ApplyOverrides(overrides field.Overrides) {
	for _, id := range field.Order() {
		value, ok := overrides[id]
		if !ok {
			continue
		}
		if err := field.Set(c.doc, id, value); err != nil {
			c.logger.Warn("dropping override", "field", id.Key(), "error", err)
		}
	}
	c.editor.Sync(c.doc)
}

// Reload re-reads the file. When the raw content matches the last seen
// content nothing changes. Otherwise the document is replaced and the
// selected field's buffer is resynchronized, discarding any uncommitted
// input. An I/O failure other than a missing file resets to defaults and
// forgets the last seen content. The returned error explains a fallback to
// defaults; the state rules hold whether or not the caller inspects it.
func (c *Controller) Reload() (bool, error) {
	outcome, err := store.Read(c.path)
	if err != nil {
		c.logger.Warn("reload failed, resetting to defaults", "error", err)
		c.doc = skyset.Default()
		c.lastRaw = ""
		c.editor.Sync(c.doc)
		return true, err
	}

	if outcome.Raw == c.lastRaw {
		c.logger.Debug("reload: content unchanged")
		return false, nil
	}

	c.logger.Debug("reload: content changed", "bytes", len(outcome.Raw))
	c.doc = outcome.Doc
	c.lastRaw = outcome.Raw
	c.editor.Sync(c.doc)
	if outcome.ParseErr != nil {
		c.logger.Warn("reloaded document did not parse, using defaults", "error", outcome.ParseErr)
	}
	return true, outcome.ParseErr
}

// Save stamps updated_at and _version and atomically replaces the file. On
// failure the document and last seen content are left as they were.
func (c *Controller) Save() error {
	stamped := c.doc.Clone()
	stamped.UpdatedAt = c.now().UTC().Format(time.RFC3339)
	stamped.Version = skyset.SchemaVersion

	data, err := skyset.Encode(stamped)
	if err != nil {
		err = skyerrors.EncodeFailed(err)
		c.logger.Warn("save abandoned", "error", err)
		return err
	}
	if err := store.Write(c.path, data); err != nil {
		c.logger.Warn("save abandoned", "error", err)
		return err
	}

	c.doc.UpdatedAt = stamped.UpdatedAt
	c.doc.Version = stamped.Version
	c.lastRaw = string(data)
	c.logger.Info("saved document", "updated_at", stamped.UpdatedAt)
	return nil
}
