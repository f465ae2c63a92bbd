package inventory

import (
	"fmt"
	"slices"
	"strings"
)

// DiskKind is the storage technology of a disk
type DiskKind int

const (
	// SSD is solid state storage
	SSD DiskKind = iota + 1
	// Magnetic is spinning platter storage, rendered as HDD
	Magnetic
)

// ParseDiskKind converts user input such as "ssd", "magnetic" or "hdd" into a
// DiskKind. Matching is case-insensitive.
func ParseDiskKind(s string) (DiskKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ssd":
		return SSD, nil
	case "magnetic", "hdd":
		return Magnetic, nil
	default:
		return 0, fmt.Errorf("unknown disk kind %q: %w", s, ErrInvalidConfiguration)
	}
}

// Valid reports whether k is one of the declared kinds
func (k DiskKind) Valid() bool {
	return k == SSD || k == Magnetic
}

func (k DiskKind) String() string {
	switch k {
	case SSD:
		return "SSD"
	case Magnetic:
		return "HDD"
	default:
		return fmt.Sprintf("DiskKind(%d)", int(k))
	}
}

// Partition is a labelled slice of a disk
type Partition struct {
	SizeGiB int
	Label   string
}

func (p Partition) String() string {
	return fmt.Sprintf("%d GiB, %s", p.SizeGiB, p.Label)
}

// Disk is a storage device owning an ordered list of partitions
type Disk struct {
	kind       DiskKind
	sizeGiB    int
	partitions []Partition
}

// NewDisk creates a disk of the given kind. It panics with an error wrapping
// ErrInvalidConfiguration when kind is not SSD or Magnetic; use ParseDiskKind
// to validate untrusted input first.
func NewDisk(kind DiskKind, sizeGiB int) *Disk {
	if !kind.Valid() {
		panic(fmt.Errorf("disk kind %d: %w", int(kind), ErrInvalidConfiguration))
	}
	return &Disk{kind: kind, sizeGiB: sizeGiB}
}

// AddPartition appends a partition and returns the disk for chaining
func (d *Disk) AddPartition(sizeGiB int, label string) *Disk {
	d.partitions = append(d.partitions, Partition{SizeGiB: sizeGiB, Label: label})
	return d
}

func (d *Disk) Kind() DiskKind { return d.kind }
func (d *Disk) SizeGiB() int   { return d.sizeGiB }

// Partitions returns a copy of the disk's partitions in insertion order
func (d *Disk) Partitions() []Partition {
	return slices.Clone(d.partitions)
}

func (d *Disk) String() string {
	return d.kind.String()
}

func (d *Disk) Label() string {
	return fmt.Sprintf("%s, %d GiB", d.kind, d.sizeGiB)
}

// Render writes the disk line followed by one indexed line per partition,
// nested one level below the disk.
func (d *Disk) Render(sb *strings.Builder, prefix string, last bool) {
	writeLine(sb, prefix, last, d.Label())

	inner := childPrefix(prefix, last)
	for i, p := range d.partitions {
		writeLine(sb, inner, i == len(d.partitions)-1, fmt.Sprintf("[%d]: %s", i, p))
	}
}

// Clone copies the disk and its partition list. Partitions are plain values,
// so copying the slice is enough.
func (d *Disk) Clone() Component {
	return &Disk{
		kind:       d.kind,
		sizeGiB:    d.sizeGiB,
		partitions: slices.Clone(d.partitions),
	}
}

func (*Disk) component() {}
