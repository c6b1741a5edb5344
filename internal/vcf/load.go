package vcf

import (
	"fmt"

	"go.uber.org/zap"
)

// LoadOptions controls how a file is loaded.
type LoadOptions struct {
	Mode   ReaderMode
	Logger *zap.Logger
}

// Load reads every record from path into a fresh RecordSet.
//
// The set is complete or absent: a file that cannot be opened or read returns
// an error and no records, while malformed data lines inside a readable file
// are dropped and counted per the tolerance policy.
func Load(path string, opts LoadOptions) (*RecordSet, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	reader, err := NewReader(path, opts.Mode)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	set := &RecordSet{Path: path}
	for {
		rec, err := reader.Next()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if rec == nil {
			break
		}
		set.Records = append(set.Records, rec)
	}

	set.Skipped = reader.Skipped()
	if set.Skipped > 0 {
		logger.Debug("skipped malformed lines",
			zap.String("path", path),
			zap.Int("skipped", set.Skipped))
	}
	logger.Info("loaded vcf",
		zap.String("path", path),
		zap.Int("records", len(set.Records)))

	return set, nil
}
