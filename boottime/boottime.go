// Package boottime keeps the previous boot duration on disk so the
// next boot can map elapsed time onto a progress fraction.
package boottime

import (
	"encoding/json"
	"log"
	"time"

	"github.com/quasilyte/gdata"
)

// Record is the boot-duration data stored on disk.
type Record struct {
	BootSeconds float64 `json:"bootSeconds"`
}

// DefaultBootDuration is assumed for the very first boot, before any
// record exists.
const DefaultBootDuration = 10 * time.Second

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for boot records.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadRecord loads the previous boot record from disk. A missing or
// unreadable record is not an error; nil is returned and the caller
// falls back to the default duration.
func LoadRecord() (*Record, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("boot-duration")
	if err != nil {
		log.Printf("Warning: Could not load boot record: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// First boot, nothing recorded yet.
		return nil, nil
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Printf("Warning: Could not parse boot record: %v", err)
		return nil, err
	}

	return &rec, nil
}

// SaveRecord saves the boot record to disk.
func SaveRecord(rec *Record) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(rec)
	if err != nil {
		log.Printf("Warning: Could not serialize boot record: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("boot-duration", data); err != nil {
		log.Printf("Warning: Could not save boot record: %v", err)
		return err
	}
	return nil
}

// Estimator maps elapsed boot time onto a progress fraction using the
// previous boot's duration.
type Estimator struct {
	expected time.Duration
}

func NewEstimator(prev *Record) *Estimator {
	expected := DefaultBootDuration
	if prev != nil && prev.BootSeconds > 0 {
		expected = time.Duration(prev.BootSeconds * float64(time.Second))
	}
	return &Estimator{expected: expected}
}

// Expected returns the boot duration the estimator is working from.
func (e *Estimator) Expected() time.Duration {
	return e.expected
}

// Fraction converts elapsed boot time to a completion fraction in
// [0,1].
func (e *Estimator) Fraction(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	f := elapsed.Seconds() / e.expected.Seconds()
	if f > 1 {
		return 1
	}
	return f
}
