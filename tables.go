package qrcode

// ISO/IEC 18004 Annex tables and the stateless formulas that key off them.
// The codeword/block tables are reproduced from the Annex 7 error correction
// table; the alignment and raw-module-count formulas are the closed forms
// used to avoid carrying forty hand-typed position lists.

// ECC Levels. The numeric values double as the 2-bit format-info ECC code
// (ISO/IEC 18004 Table 25), which is why LevelM is 0 and LevelL is 1.
const (
	LevelM = 0 // ~15% recoverable erasures
	LevelL = 1 // ~7%
	LevelH = 2 // ~30%
	LevelQ = 3 // ~25%
)

// levelOrdinal maps a Level constant to the 0..3 row index used by the
// ECC tables below (Low, Medium, Quartile, High).
func levelOrdinal(level int) int {
	switch level {
	case LevelL:
		return 0
	case LevelM:
		return 1
	case LevelQ:
		return 2
	case LevelH:
		return 3
	default:
		panic("qrcode: invalid ec level")
	}
}

// eccCodewordsPerBlock[ordinal][version] is the number of EC codewords in
// each block. Index 0 of the version axis is unused padding.
var eccCodewordsPerBlock = [4][41]int{
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

// numErrorCorrectionBlocks[ordinal][version] is the total block count
// (group 1 + group 2).
var numErrorCorrectionBlocks = [4][41]int{
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// numRawDataModules returns the number of bits available for codewords
// (data + EC) at the given version, after every function pattern is
// excluded. May include up to 7 unused remainder bits.
func numRawDataModules(version int) int {
	v := version
	result := (16*v+128)*v + 64
	if v >= 2 {
		numAlign := v/7 + 2
		result -= (25*numAlign-10)*numAlign - 55
		if v >= 7 {
			result -= 36
		}
	}
	return result
}

// totalCodewords returns C(version): the fixed total codeword count for a
// symbol, combining data and EC codewords across all blocks.
func totalCodewords(version int) int {
	return numRawDataModules(version) / 8
}

// numDataCodewords returns the data-codeword capacity for (version, level).
func numDataCodewords(version, level int) int {
	ord := levelOrdinal(level)
	return totalCodewords(version) - eccCodewordsPerBlock[ord][version]*numErrorCorrectionBlocks[ord][version]
}

// blockPlan describes how a version/level's data codewords are split across
// blocks: shortCount blocks of shortLen data codewords, followed by
// numBlocks-shortCount blocks of shortLen+1, each trailed by eccLen EC
// codewords.
type blockPlan struct {
	numBlocks  int
	eccLen     int
	shortLen   int
	shortCount int // blocks carrying shortLen data codewords
}

func newBlockPlan(version, level int) blockPlan {
	ord := levelOrdinal(level)
	numBlocks := numErrorCorrectionBlocks[ord][version]
	eccLen := eccCodewordsPerBlock[ord][version]
	rawCodewords := totalCodewords(version)
	shortLen := rawCodewords/numBlocks - eccLen
	shortCount := numBlocks - (rawCodewords % numBlocks)
	return blockPlan{numBlocks: numBlocks, eccLen: eccLen, shortLen: shortLen, shortCount: shortCount}
}

func (p blockPlan) dataLen(block int) int {
	if block < p.shortCount {
		return p.shortLen
	}
	return p.shortLen + 1
}

// alignmentPatternPositions returns the ascending coordinate list shared by
// both axes for a version's alignment pattern centers. Empty for version 1.
func alignmentPatternPositions(version int) []int {
	if version == 1 {
		return nil
	}
	numAlign := version/7 + 2
	size := version*4 + 17
	var step int
	if version == 32 {
		step = 26
	} else {
		step = (version*4+numAlign*2+1)/(numAlign*2-2) * 2
	}
	positions := make([]int, numAlign)
	positions[0] = 6
	for i, pos := 1, size-7; i < numAlign; i, pos = i+1, pos-step {
		positions[numAlign-i] = pos
	}
	return positions
}

// charCountBits returns the character-count indicator width for mode at
// version, per ISO/IEC 18004 Table 3.
func charCountBits(mode, version int) int {
	switch {
	case version <= 9:
		switch mode {
		case ModeNumeric:
			return 10
		case ModeAlphanumeric:
			return 9
		default:
			return 8
		}
	case version <= 26:
		switch mode {
		case ModeNumeric:
			return 12
		case ModeAlphanumeric:
			return 11
		default:
			return 16
		}
	default:
		switch mode {
		case ModeNumeric:
			return 14
		case ModeAlphanumeric:
			return 13
		default:
			return 16
		}
	}
}

// bchFormat computes the 15-bit masked format word for a 5-bit format value
// (2-bit EC level << 3 | 3-bit mask), per ISO/IEC 18004 Annex C, BCH(15,5)
// with generator 0x537 and XOR mask 0x5412.
func bchFormat(data int) int {
	d := uint32(data)
	rem := d
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * 0x537)
	}
	return int((d<<10 | rem) ^ 0x5412)
}

// bchVersion computes the 18-bit version-information word for version >= 7,
// per ISO/IEC 18004 Annex D, BCH(18,6) with generator 0x1F25.
func bchVersion(version int) int {
	d := uint32(version)
	rem := d
	for i := 0; i < 12; i++ {
		rem = (rem << 1) ^ ((rem >> 11) * 0x1F25)
	}
	return int(d<<12 | rem)
}
