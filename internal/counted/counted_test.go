package counted_test

import (
	"errors"
	"testing"

	"github.com/mgnsk/list/internal/counted"
	. "github.com/onsi/gomega"
)

type failingPoint struct {
	fail bool
}

var errFault = errors.New("fault")

func (p *failingPoint) Point() error {
	if p.fail {
		return errFault
	}
	return nil
}

func TestLifecycle(t *testing.T) {
	g := NewWithT(t)

	reg := counted.NewRegistry(nil)

	v, err := reg.New(5)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(v.Int()).To(Equal(5))

	c, err := v.Clone()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(c.Int()).To(Equal(5))
	g.Expect(reg.Live()).To(Equal(2))

	v.Release()
	c.Release()
	g.Expect(reg.Live()).To(BeZero())
	g.Expect(reg.Violations()).To(BeEmpty())
}

func TestViolations(t *testing.T) {
	g := NewWithT(t)

	reg := counted.NewRegistry(nil)

	v, err := reg.New(1)
	g.Expect(err).NotTo(HaveOccurred())

	v.Release()
	v.Release()
	_ = v.Int()

	g.Expect(reg.Violations()).To(HaveLen(2))
}

func TestFaultPoint(t *testing.T) {
	g := NewWithT(t)

	p := &failingPoint{}
	reg := counted.NewRegistry(p)

	v, err := reg.New(1)
	g.Expect(err).NotTo(HaveOccurred())

	p.fail = true

	_, err = reg.New(2)
	g.Expect(err).To(MatchError(errFault))

	_, err = v.Clone()
	g.Expect(err).To(MatchError(errFault))

	g.Expect(reg.Live()).To(Equal(1))
}

func TestSnapshotDiff(t *testing.T) {
	g := NewWithT(t)

	reg := counted.NewRegistry(nil)

	a, err := reg.New(1)
	g.Expect(err).NotTo(HaveOccurred())

	s := reg.Snapshot()

	b, err := reg.New(2)
	g.Expect(err).NotTo(HaveOccurred())
	a.Release()

	added, removed := reg.Diff(s)
	g.Expect(added).To(HaveLen(1))
	g.Expect(removed).To(HaveLen(1))

	b.Release()
	_, err = reg.New(3)
	g.Expect(err).NotTo(HaveOccurred())

	added, removed = reg.Diff(reg.Snapshot())
	g.Expect(added).To(BeEmpty())
	g.Expect(removed).To(BeEmpty())
}
