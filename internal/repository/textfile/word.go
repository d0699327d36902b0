package textfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"flashcards/internal/domain"
)

// DefaultFileName is the backing file name inside the data directory
const DefaultFileName = "Words.txt"

// WordRepo implements repository.WordRepository on a comma-separated text file.
// Plain pairs are written as `source,translation`; fields holding a comma,
// quote or line break are quoted and escaped so every record is one line.
type WordRepo struct {
	path string
}

// NewWordRepo creates a repository backed by the file at path
func NewWordRepo(path string) *WordRepo {
	return &WordRepo{path: path}
}

// Path returns the backing file path
func (r *WordRepo) Path() string {
	return r.path
}

// Load reads all pairs, creating the file if it does not exist.
// Records that do not have exactly two fields are skipped.
func (r *WordRepo) Load() (domain.LoadResult, error) {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return domain.LoadResult{}, fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return domain.LoadResult{}, fmt.Errorf("failed to open words file: %w", err)
	}
	defer f.Close()

	return parse(f)
}

// Save rewrites the whole file with words
func (r *WordRepo) Save(words domain.WordList) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	// Rename below makes this a no-op on success
	defer os.Remove(tmp.Name())

	if err := write(tmp, words); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write words: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace words file: %w", err)
	}
	return nil
}

func parse(src io.Reader) (domain.LoadResult, error) {
	reader := bufio.NewReader(src)
	result := domain.LoadResult{Words: domain.WordList{}}

	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return domain.LoadResult{}, fmt.Errorf("failed to read words file: %w", err)
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			if pair, ok := parseLine(line); ok {
				result.Words = append(result.Words, pair)
			} else {
				result.Skipped++
			}
		}

		if err == io.EOF {
			break
		}
	}

	return result, nil
}

// parseLine reads one physical line. A line made of quoted fields is decoded
// as such; anything else splits on the delimiter and needs exactly two parts.
func parseLine(line string) (domain.WordPair, bool) {
	fields, ok := splitQuoted(line)
	if !ok {
		fields = strings.Split(line, ",")
	}
	if len(fields) != 2 {
		return domain.WordPair{}, false
	}
	return domain.WordPair{
		Source:      strings.TrimSpace(fields[0]),
		Translation: strings.TrimSpace(fields[1]),
	}, true
}

// splitQuoted decodes a line where at least one field is quoted. It fails on
// lines without quoted fields and on any quote that is not closed on the line.
func splitQuoted(line string) ([]string, bool) {
	var fields []string
	quoted := false
	i := 0

	for {
		j := i
		for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
			j++
		}

		if j >= len(line) || line[j] != '"' {
			// unquoted field runs to the next delimiter
			end := strings.IndexByte(line[i:], ',')
			if end < 0 {
				fields = append(fields, line[i:])
				break
			}
			fields = append(fields, line[i:i+end])
			i += end + 1
			continue
		}

		quoted = true
		var b strings.Builder
		k := j + 1
		closed := false
		for k < len(line) && !closed {
			c := line[k]
			switch {
			case c == '"' && k+1 < len(line) && line[k+1] == '"':
				b.WriteByte('"')
				k += 2
			case c == '"':
				closed = true
				k++
			case c == '\\' && k+1 < len(line):
				switch line[k+1] {
				case 'n':
					b.WriteByte('\n')
				case 'r':
					b.WriteByte('\r')
				default:
					b.WriteByte(line[k+1])
				}
				k += 2
			default:
				b.WriteByte(c)
				k++
			}
		}
		if !closed {
			return nil, false
		}
		fields = append(fields, b.String())

		for k < len(line) && (line[k] == ' ' || line[k] == '\t') {
			k++
		}
		if k >= len(line) {
			break
		}
		if line[k] != ',' {
			return nil, false
		}
		i = k + 1
		if i == len(line) {
			fields = append(fields, "")
			break
		}
	}

	if !quoted {
		return nil, false
	}
	return fields, true
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `""`, "\n", `\n`, "\r", `\r`)

// formatField leaves plain text as is and quotes text holding a delimiter,
// quote or line break so the record stays on one line
func formatField(s string) string {
	if !strings.ContainsAny(s, ",\"\r\n") {
		return s
	}
	return `"` + escaper.Replace(s) + `"`
}

func write(dst io.Writer, words domain.WordList) error {
	w := bufio.NewWriter(dst)
	for _, p := range words {
		if _, err := w.WriteString(formatField(p.Source) + "," + formatField(p.Translation) + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
