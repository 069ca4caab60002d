package report

import (
	"bufio"
	"io"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/pkg/errors"

	"github.com/yurykabanov/fsgc/pkg/domain"
)

// Reporter writes the human readable failure report: a header line per run
// followed by one line per failed entry.
type Reporter struct {
	w      io.Writer
	header *strftime.Strftime
	prefix string
}

func New(w io.Writer, header, prefix string) (*Reporter, error) {
	f, err := strftime.New(header)
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid header template %q", header)
	}

	return &Reporter{
		w:      w,
		header: f,
		prefix: prefix,
	}, nil
}

func (r *Reporter) Header(t time.Time) error {
	_, err := io.WriteString(r.w, r.header.FormatString(t)+"\n")
	return err
}

func (r *Reporter) Failures(errs []*domain.Error) error {
	bw := bufio.NewWriter(r.w)

	for _, err := range errs {
		for _, leaf := range err.Flatten() {
			bw.WriteString(r.prefix)
			bw.WriteString(leaf.Error())
			bw.WriteString("\n")
		}
	}

	return bw.Flush()
}
