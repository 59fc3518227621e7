package bookmark

// Record is the immutable, decoded form of one Apple Bookmark payload. A
// bookmark decode populates everything except the bundled-app fields
// (IsBundled, AppID, AppBinary), which the registry reader fills in
// directly for registrations that carry no bookmark at all.
type Record struct {
	PathComponents []string
	CNIDPath       []int64
	TargetCreation float64
	TargetFlags    []uint64

	VolumePath     string
	VolumeURL      string
	VolumeName     string
	VolumeUUID     string
	VolumeSize     int64
	VolumeCreation float64
	VolumeFlags    []uint64
	VolumeRoot     bool

	LocalizedName string

	SecurityExtensionRW string
	SecurityExtensionRO string

	Username string
	UID      int32

	FolderIndex     int32
	CreationOptions int32

	HasExecutableFlag bool
	FileRefFlag       bool

	IsBundled bool
	AppID     string
	AppBinary string
}

// Unknown is the tagged variant returned for a typed-record whose type tag is
// not one this decoder understands, so callers can log it without failing
// the decode.
type Unknown struct {
	Tag   uint32
	Bytes []byte
}

// typedValue is the decoded payload of one typed record, tagged by its type.
// Exactly one field is meaningful per Tag; this mirrors a tagged-variant
// decode without resorting to dynamic (interface{}-typed) construction.
type typedValue struct {
	Tag     uint32
	Str     string
	Data    []byte
	Int32   int32
	Int64   int64
	Date    float64
	Bool    bool
	Offsets []uint32 // only populated for Tag == typeArray
	Unknown Unknown
}

// recordBuilder assembles a Record field-by-field from TOC entries, in
// whatever order the TOC happens to present them, then finalises into an
// immutable Record. Keys are unique within a TOC, so field assignment is
// commutative and the builder has no ordering dependencies between
// assignments.
type recordBuilder struct {
	rec Record
}

func newRecordBuilder() *recordBuilder {
	return &recordBuilder{}
}

func (b *recordBuilder) finish() Record {
	// The executable bit lives in the third element of the target-flags
	// triple. The first element carries the resource-property bits
	// (directory, package, application) and is set even for plain folders.
	if len(b.rec.TargetFlags) > 2 {
		b.rec.HasExecutableFlag = b.rec.TargetFlags[2]&0x02 != 0
	}
	return b.rec
}
