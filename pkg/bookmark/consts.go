package bookmark

// Header layout. The bookmark payload begins with a fixed 48-byte header;
// everything after it is the data region.
const (
	headerSize          = 48
	headerSignature     = 0x6B6F6F62 // ASCII "book", little-endian
	headerDataOffset    = 48
	tocRecordHeaderSize = 12 // key, data_offset, reserved - 4 bytes each
)

// Typed-record type tags.
const (
	typeString  = 0x0101
	typeData    = 0x0201
	typeInt32   = 0x0303
	typeInt64   = 0x0304
	typeDate    = 0x0400
	typeBoolean = 0x0501
	typeArray   = 0x0601
	typeURL     = 0x0901
)

// TOC entry keys.
const (
	keyTargetPath           = 0x1004
	keyTargetCNIDPath       = 0x1005
	keyTargetFlags          = 0x1010
	keyTargetCreationDate   = 0x1040
	keyVolumePath           = 0x2002
	keyVolumeURL            = 0x2005
	keyVolumeName           = 0x2010
	keyVolumeUUID           = 0x2011
	keyVolumeSize           = 0x2012
	keyVolumeCreationDate   = 0x2013
	keyVolumeFlags          = 0x2020
	keyVolumeIsRoot         = 0x2030
	keyContainingFolderIdx  = 0xC001
	keyCreatorUsername      = 0xC011
	keyCreatorUID           = 0xC012
	keyFileReferenceFlag    = 0xD001
	keyCreationOptions      = 0xD010
	keyLocalizedName        = 0xF017
	keySandboxRWExtension   = 0xF080
	keySandboxROExtension   = 0xF081
)

// maxFlagTripleLen bounds the target/volume flag triples to at most 3 elements.
const maxFlagTripleLen = 3

// maxArrayResolutionDepth bounds array resolution against hostile inputs:
// arrays point at typed records, never at other arrays, in every observed
// artifact, so a limit of 2 never constrains real data.
const maxArrayResolutionDepth = 2
