package mdrsort

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Pipeline sorts a folder of tabular files into the MDR category folders.
// A Pipeline processes files strictly one at a time.
type Pipeline struct {
	opts       *Options
	splitter   *Splitter
	classifier *Classifier
	filter     *fileFilter
}

// NewPipeline creates a Pipeline configured by opts.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	o := buildOptions(opts)
	classifier, err := NewClassifier(o.rules)
	if err != nil {
		return nil, err
	}
	filter, err := newFileFilter(o.ignoreRules)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		opts:       o,
		splitter:   NewSplitter(opts...),
		classifier: classifier,
		filter:     filter,
	}, nil
}

// Run processes root: split multi-sheet workbooks, classify and move every
// file, then export moved files to text. Per-file failures are recorded in
// the report; only an unusable root returns an error.
func Run(root string, opts ...Option) (*Report, error) {
	p, err := NewPipeline(opts...)
	if err != nil {
		return nil, err
	}
	return p.Run(root)
}

// Run processes root once. See the package-level Run.
func (p *Pipeline) Run(root string) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("open root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", root)
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Root:    root,
		Started: time.Now(),
	}
	log := p.opts.logger.With().Str("run_id", report.RunID).Logger()
	log.Info().Str("root", root).Msg("run started")

	if err := ensureCategoryDirs(root); err != nil {
		return nil, err
	}
	files, err := p.snapshot(root)
	if err != nil {
		return nil, err
	}

	files = p.expand(files, report, log)

	var moved []string
	for _, path := range files {
		if dst, ok := p.classifyAndMove(root, path, report, log); ok {
			moved = append(moved, dst)
		}
	}

	if p.opts.export {
		for _, path := range moved {
			p.export(path, report, log)
		}
	}

	report.Finished = time.Now()
	log.Info().
		Int("processed", report.Processed).
		Int("skipped", report.Skipped).
		Int("exported", report.Exported).
		Dur("elapsed", report.Finished.Sub(report.Started)).
		Msg("run finished")
	return report, nil
}

// ensureCategoryDirs creates MDR1..MDR4 under root if absent.
func ensureCategoryDirs(root string) error {
	for _, c := range Categories {
		if err := os.MkdirAll(filepath.Join(root, c.String()), 0o755); err != nil {
			return fmt.Errorf("create category folder %s: %w", c, err)
		}
	}
	return nil
}

// snapshot lists the accepted regular files directly under root once.
// Files created later in the run are added explicitly, never rediscovered.
func (p *Pipeline) snapshot(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read root %q: %w", root, err)
	}
	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !p.filter.Included(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(root, e.Name()))
	}
	return files, nil
}

// expand replaces every multi-sheet workbook in files with its split outputs.
// A workbook that fails to split stays in the set as it was.
func (p *Pipeline) expand(files []string, report *Report, log zerolog.Logger) []string {
	out := make([]string, 0, len(files))
	seen := make(map[string]bool, len(files))
	keep := func(paths ...string) {
		for _, f := range paths {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	for _, path := range files {
		if !DetectFormat(path).IsWorkbook() {
			keep(path)
			continue
		}
		children, err := p.splitter.Split(path)
		if err != nil {
			log.Error().Str("file", filepath.Base(path)).Err(err).Msg("error splitting")
			report.add(FileResult{Path: path, Stage: StageSplit, Outcome: OutcomeFailed, Err: err})
			keep(path)
			continue
		}
		if len(children) == 0 {
			keep(path)
			continue
		}
		report.add(FileResult{
			Path:    path,
			Stage:   StageSplit,
			Outcome: OutcomeProcessed,
			Reason:  fmt.Sprintf("%d sheets", len(children)),
		})
		keep(children...)
	}
	return out
}

// classifyAndMove runs the rename, read, classify and move steps for one
// file. It returns the file's new path when it was moved.
func (p *Pipeline) classifyAndMove(root, path string, report *Report, log zerolog.Logger) (string, bool) {
	skip := func(stage Stage, err error) (string, bool) {
		report.Skipped++
		report.add(FileResult{Path: path, Stage: stage, Outcome: OutcomeSkipped, Err: err})
		return "", false
	}

	name := filepath.Base(path)
	if strings.Contains(name, "'") {
		newName := StripApostrophes(name)
		newPath := filepath.Join(filepath.Dir(path), newName)
		if err := renameNoClobber(path, newPath); err != nil {
			log.Error().Str("file", name).Err(err).Msg("error renaming")
			return skip(StageRename, err)
		}
		log.Info().Str("file", name).Str("renamed", newName).Msg("renamed")
		path, name = newPath, newName
	}

	log.Debug().Str("file", name).Msg("checking")
	grid, err := p.readSingleSheet(path)
	if err != nil {
		log.Error().Str("file", name).Err(err).Msg("error reading file")
		return skip(StageRead, err)
	}

	result, err := p.classifier.Classify(grid)
	if err != nil {
		log.Error().Str("file", name).Err(err).Msg("error classifying")
		return skip(StageClassify, err)
	}
	report.Processed++

	if !result.Matched() {
		log.Info().Str("file", name).Str("evidence", result.Evidence.String()).Msg("no match found")
		report.add(FileResult{Path: path, Stage: StageClassify, Outcome: OutcomeProcessed, Category: Unclassified})
		return "", false
	}

	dst, err := moveFile(path, filepath.Join(root, result.Category.String()))
	if err != nil {
		log.Error().Str("file", name).Stringer("category", result.Category).Err(err).Msg("error moving")
		report.add(FileResult{
			Path: path, Stage: StageMove, Outcome: OutcomeFailed,
			Category: result.Category, Reason: result.Rule.Reason, Err: err,
		})
		return "", false
	}
	log.Info().Str("file", name).Stringer("category", result.Category).Str("matched", result.Rule.Reason).Msg("moved")
	report.add(FileResult{
		Path: dst, Stage: StageMove, Outcome: OutcomeProcessed,
		Category: result.Category, Reason: result.Rule.Reason,
	})
	return dst, true
}

// readSingleSheet reads the first sheet of path, refusing workbooks that
// still hold several sheets.
func (p *Pipeline) readSingleSheet(path string) (*Grid, error) {
	wb, err := OpenTabular(path, p.opts.readFile)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	if n := len(wb.SheetNames()); n > 1 {
		return nil, fmt.Errorf("%q has %d sheets: %w", path, n, ErrMultiSheet)
	}
	return FirstSheet(wb)
}

// export normalizes a moved file and writes its text rendering, deleting
// the original only once the text file is fully in place.
func (p *Pipeline) export(path string, report *Report, log zerolog.Logger) {
	name := filepath.Base(path)
	category := CategoryFromPath(path)
	fail := func(err error) {
		log.Error().Str("file", name).Err(err).Msg("export failed")
		report.add(FileResult{Path: path, Stage: StageExport, Outcome: OutcomeFailed, Category: category, Err: err})
	}

	grid, err := p.readSingleSheet(path)
	if err != nil {
		fail(err)
		return
	}
	if category.DropsFirstColumn() && grid.Width() >= 1 {
		grid = grid.DropFirstColumn()
		log.Info().Str("file", name).Msg("deleted first column")
	}
	NormalizeColumns(grid, NormalizedColumns...)

	if txt := TextPath(path); exists(txt) {
		fail(fmt.Errorf("export %q: %w", txt, ErrDestinationExists))
		return
	}
	out, err := ExportText(path, grid, p.opts.encoding)
	if err != nil {
		fail(err)
		return
	}
	log.Info().Str("file", filepath.Base(out)).Msg("saved")

	if err := os.Remove(path); err != nil {
		fail(fmt.Errorf("delete original: %w", err))
		return
	}
	log.Info().Str("file", name).Msg("deleted original")
	report.Exported++
	report.add(FileResult{Path: out, Stage: StageExport, Outcome: OutcomeProcessed, Category: category})
}
