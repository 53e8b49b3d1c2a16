package font

// Glyph data for the 6x12 ASCII table. Two bytes per column; only the
// high four bits of each second byte are used (12 rows per column).
var font6x12Data = [...]byte{
	// 0x20 ' '
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x21 '!'
	0x00, 0x00, 0x00, 0x00, 0x3E, 0x80, 0x3E, 0x80, 0x38, 0x00, 0x00, 0x00,
	// 0x22 '"'
	0x00, 0x00, 0x60, 0x00, 0x70, 0x00, 0x00, 0x00, 0x70, 0x00, 0x60, 0x00,
	// 0x23 '#'
	0x09, 0x00, 0x3F, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x09, 0x00,
	// 0x24 '$'
	0x39, 0x80, 0x3C, 0x80, 0xE4, 0xE0, 0xE4, 0xE0, 0x27, 0x80, 0x37, 0x80,
	// 0x25 '%'
	0x18, 0x80, 0x19, 0x80, 0x07, 0x00, 0x04, 0x00, 0x0C, 0x80, 0x18, 0x80,
	// 0x26 '&'
	0x07, 0x80, 0x37, 0x80, 0x3C, 0x80, 0x3F, 0x80, 0x37, 0x80, 0x04, 0x80,
	// 0x27 '\''
	0x00, 0x00, 0x10, 0x00, 0x70, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x28 '('
	0x00, 0x00, 0x00, 0x00, 0x3F, 0x80, 0x20, 0x80, 0x20, 0x80, 0x00, 0x00,
	// 0x29 ')'
	0x00, 0x00, 0x00, 0x00, 0x20, 0x80, 0x3F, 0x80, 0x1F, 0x00, 0x00, 0x00,
	// 0x2A '*'
	0x04, 0x00, 0x0D, 0x00, 0x0F, 0x00, 0x06, 0x00, 0x0F, 0x00, 0x0D, 0x00,
	// 0x2B '+'
	0x00, 0x00, 0x04, 0x00, 0x0F, 0x00, 0x0F, 0x00, 0x04, 0x00, 0x04, 0x00,
	// 0x2C ','
	0x00, 0x00, 0x00, 0x00, 0x01, 0xC0, 0x01, 0x80, 0x00, 0x00, 0x00, 0x00,
	// 0x2D '-'
	0x04, 0x00, 0x04, 0x00, 0x04, 0x00, 0x04, 0x00, 0x04, 0x00, 0x04, 0x00,
	// 0x2E '.'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00,
	// 0x2F '/'
	0x00, 0x80, 0x01, 0x80, 0x07, 0x00, 0x04, 0x00, 0x0C, 0x00, 0x18, 0x00,
	// 0x30 '0'
	0x1F, 0x00, 0x3F, 0x80, 0x24, 0x80, 0x24, 0x80, 0x20, 0x80, 0x3F, 0x80,
	// 0x31 '1'
	0x00, 0x00, 0x10, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x00, 0x80, 0x00, 0x80,
	// 0x32 '2'
	0x21, 0x80, 0x23, 0x80, 0x26, 0x80, 0x2C, 0x80, 0x38, 0x80, 0x30, 0x80,
	// 0x33 '3'
	0x20, 0x80, 0x20, 0x80, 0x24, 0x80, 0x24, 0x80, 0x3F, 0x80, 0x3F, 0x80,
	// 0x34 '4'
	0x04, 0x00, 0x0C, 0x00, 0x3C, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x04, 0x80,
	// 0x35 '5'
	0x3C, 0x80, 0x3C, 0x80, 0x24, 0x80, 0x24, 0x80, 0x27, 0x80, 0x27, 0x80,
	// 0x36 '6'
	0x1F, 0x80, 0x3F, 0x80, 0x24, 0x80, 0x24, 0x80, 0x07, 0x80, 0x07, 0x80,
	// 0x37 '7'
	0x20, 0x00, 0x20, 0x00, 0x27, 0x80, 0x24, 0x00, 0x3C, 0x00, 0x38, 0x00,
	// 0x38 '8'
	0x3F, 0x80, 0x3F, 0x80, 0x24, 0x80, 0x24, 0x80, 0x3F, 0x80, 0x3F, 0x80,
	// 0x39 '9'
	0x38, 0x00, 0x3C, 0x80, 0x24, 0x80, 0x24, 0x80, 0x3F, 0x80, 0x3F, 0x00,
	// 0x3A ':'
	0x00, 0x00, 0x00, 0x00, 0x19, 0x80, 0x19, 0x80, 0x00, 0x00, 0x00, 0x00,
	// 0x3B ';'
	0x00, 0x00, 0x00, 0x00, 0x19, 0x80, 0x19, 0x80, 0x00, 0x00, 0x00, 0x00,
	// 0x3C '<'
	0x00, 0x00, 0x04, 0x00, 0x0F, 0x00, 0x19, 0x80, 0x30, 0x80, 0x20, 0x80,
	// 0x3D '='
	0x00, 0x00, 0x0A, 0x00, 0x0A, 0x00, 0x0A, 0x00, 0x0A, 0x00, 0x0A, 0x00,
	// 0x3E '>'
	0x00, 0x00, 0x20, 0x80, 0x39, 0x80, 0x0F, 0x00, 0x06, 0x00, 0x04, 0x00,
	// 0x3F '?'
	0x30, 0x00, 0x30, 0x00, 0x26, 0x80, 0x2E, 0x80, 0x38, 0x00, 0x30, 0x00,
	// 0x40 '@'
	0x1F, 0x80, 0x3F, 0x80, 0x27, 0x80, 0x27, 0x80, 0x3F, 0x80, 0x1E, 0x00,
	// 0x41 'A'
	0x0F, 0x80, 0x1F, 0x80, 0x34, 0x00, 0x34, 0x00, 0x1F, 0x80, 0x0F, 0x80,
	// 0x42 'B'
	0x20, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x24, 0x80, 0x3F, 0x80, 0x3F, 0x80,
	// 0x43 'C'
	0x1F, 0x00, 0x3F, 0x80, 0x20, 0x80, 0x20, 0x80, 0x20, 0x80, 0x31, 0x80,
	// 0x44 'D'
	0x20, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x20, 0x80, 0x3F, 0x80, 0x1F, 0x00,
	// 0x45 'E'
	0x20, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x2C, 0x80, 0x20, 0x80, 0x31, 0x80,
	// 0x46 'F'
	0x20, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x2C, 0x00, 0x20, 0x00, 0x30, 0x00,
	// 0x47 'G'
	0x1F, 0x00, 0x3F, 0x80, 0x24, 0x80, 0x24, 0x80, 0x27, 0x80, 0x37, 0x80,
	// 0x48 'H'
	0x3F, 0x80, 0x3F, 0x80, 0x04, 0x00, 0x04, 0x00, 0x3F, 0x80, 0x3F, 0x80,
	// 0x49 'I'
	0x00, 0x00, 0x00, 0x00, 0x3F, 0x80, 0x3F, 0x80, 0x20, 0x80, 0x00, 0x00,
	// 0x4A 'J'
	0x03, 0x80, 0x03, 0x80, 0x20, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x20, 0x00,
	// 0x4B 'K'
	0x20, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x0E, 0x00, 0x3B, 0x80, 0x31, 0x80,
	// 0x4C 'L'
	0x20, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x00, 0x80, 0x00, 0x80, 0x01, 0x80,
	// 0x4D 'M'
	0x3F, 0x80, 0x3F, 0x80, 0x3C, 0x00, 0x1C, 0x00, 0x38, 0x00, 0x3F, 0x80,
	// 0x4E 'N'
	0x3F, 0x80, 0x3F, 0x80, 0x3C, 0x00, 0x0C, 0x00, 0x3F, 0x80, 0x3F, 0x80,
	// 0x4F 'O'
	0x3F, 0x80, 0x3F, 0x80, 0x20, 0x80, 0x20, 0x80, 0x3F, 0x80, 0x3F, 0x80,
	// 0x50 'P'
	0x20, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x24, 0x00, 0x3C, 0x00, 0x38, 0x00,
	// 0x51 'Q'
	0x3F, 0x80, 0x3F, 0x80, 0x21, 0x80, 0x20, 0xE0, 0x3F, 0xE0, 0x3F, 0xA0,
	// 0x52 'R'
	0x20, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x24, 0x00, 0x3F, 0x80, 0x3B, 0x80,
	// 0x53 'S'
	0x31, 0x80, 0x39, 0x80, 0x2C, 0x80, 0x24, 0x80, 0x37, 0x80, 0x33, 0x80,
	// 0x54 'T'
	0x30, 0x00, 0x20, 0x00, 0x3F, 0x80, 0x3F, 0x80, 0x20, 0x80, 0x30, 0x00,
	// 0x55 'U'
	0x3F, 0x80, 0x3F, 0x80, 0x00, 0x80, 0x00, 0x80, 0x3F, 0x80, 0x3F, 0x80,
	// 0x56 'V'
	0x3E, 0x00, 0x3F, 0x00, 0x01, 0x80, 0x00, 0x80, 0x01, 0x80, 0x3F, 0x00,
	// 0x57 'W'
	0x3F, 0x00, 0x3F, 0x80, 0x07, 0x80, 0x07, 0x00, 0x01, 0x80, 0x3F, 0x80,
	// 0x58 'X'
	0x20, 0x80, 0x31, 0x80, 0x1F, 0x00, 0x0E, 0x00, 0x1B, 0x00, 0x31, 0x80,
	// 0x59 'Y'
	0x30, 0x00, 0x38, 0x00, 0x0F, 0x80, 0x07, 0x80, 0x0C, 0x80, 0x38, 0x00,
	// 0x5A 'Z'
	0x31, 0x80, 0x23, 0x80, 0x26, 0x80, 0x2C, 0x80, 0x38, 0x80, 0x31, 0x80,
	// 0x5B '['
	0x00, 0x00, 0x00, 0x00, 0x3F, 0x80, 0x20, 0x80, 0x20, 0x80, 0x00, 0x00,
	// 0x5C '\'
	0x38, 0x00, 0x1C, 0x00, 0x0E, 0x00, 0x07, 0x00, 0x03, 0x80, 0x01, 0x80,
	// 0x5D ']'
	0x00, 0x00, 0x00, 0x00, 0x20, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x00, 0x00,
	// 0x5E '^'
	0x20, 0x00, 0x20, 0x00, 0xE0, 0x00, 0x60, 0x00, 0x20, 0x00, 0x20, 0x00,
	// 0x5F '_'
	0x00, 0x20, 0x00, 0x20, 0x00, 0x20, 0x00, 0x20, 0x00, 0x20, 0x00, 0x20,
	// 0x60 '`'
	0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x61 'a'
	0x03, 0x80, 0x0F, 0x80, 0x0C, 0x80, 0x0F, 0x80, 0x07, 0x80, 0x00, 0x80,
	// 0x62 'b'
	0x20, 0x00, 0x3F, 0x80, 0x3F, 0x80, 0x0C, 0x80, 0x07, 0x80, 0x07, 0x80,
	// 0x63 'c'
	0x07, 0x80, 0x0F, 0x80, 0x08, 0x80, 0x08, 0x80, 0x0C, 0x80, 0x04, 0x80,
	// 0x64 'd'
	0x07, 0x80, 0x07, 0x80, 0x2C, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x00, 0x80,
	// 0x65 'e'
	0x07, 0x80, 0x0F, 0x80, 0x0C, 0x80, 0x0C, 0x80, 0x0C, 0x80, 0x04, 0x80,
	// 0x66 'f'
	0x04, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x20, 0x00, 0x30, 0x00, 0x00, 0x00,
	// 0x67 'g'
	0x07, 0xA0, 0x0F, 0xB0, 0x08, 0x90, 0x07, 0xF0, 0x0F, 0xE0, 0x08, 0x00,
	// 0x68 'h'
	0x20, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x08, 0x00, 0x0F, 0x80, 0x07, 0x80,
	// 0x69 'i'
	0x00, 0x00, 0x00, 0x00, 0x2F, 0x80, 0x2F, 0x80, 0x00, 0x80, 0x00, 0x00,
	// 0x6A 'j'
	0x00, 0x00, 0x00, 0x60, 0x00, 0x70, 0x08, 0x10, 0x2F, 0xF0, 0x2F, 0xE0,
	// 0x6B 'k'
	0x20, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x07, 0x00, 0x0D, 0x80, 0x08, 0x80,
	// 0x6C 'l'
	0x00, 0x00, 0x00, 0x00, 0x3F, 0x80, 0x3F, 0x80, 0x00, 0x80, 0x00, 0x00,
	// 0x6D 'm'
	0x0F, 0x80, 0x0F, 0x80, 0x0F, 0x80, 0x07, 0x80, 0x0C, 0x00, 0x0F, 0x80,
	// 0x6E 'n'
	0x08, 0x00, 0x0F, 0x80, 0x0F, 0x80, 0x08, 0x00, 0x0F, 0x80, 0x07, 0x80,
	// 0x6F 'o'
	0x07, 0x80, 0x0F, 0x80, 0x08, 0x80, 0x08, 0x80, 0x0F, 0x80, 0x07, 0x80,
	// 0x70 'p'
	0x08, 0x10, 0x0F, 0xF0, 0x0F, 0xF0, 0x08, 0x80, 0x0F, 0x80, 0x07, 0x80,
	// 0x71 'q'
	0x07, 0x80, 0x0F, 0x80, 0x08, 0x90, 0x07, 0xF0, 0x0F, 0xF0, 0x08, 0x10,
	// 0x72 'r'
	0x08, 0x80, 0x0F, 0x80, 0x0F, 0x80, 0x08, 0x00, 0x0C, 0x00, 0x04, 0x00,
	// 0x73 's'
	0x04, 0x80, 0x0C, 0x80, 0x0E, 0x80, 0x0B, 0x80, 0x0D, 0x80, 0x04, 0x80,
	// 0x74 't'
	0x08, 0x00, 0x08, 0x00, 0x3F, 0x80, 0x08, 0x80, 0x08, 0x80, 0x00, 0x80,
	// 0x75 'u'
	0x0F, 0x80, 0x0F, 0x80, 0x00, 0x80, 0x0F, 0x80, 0x0F, 0x80, 0x00, 0x80,
	// 0x76 'v'
	0x0E, 0x00, 0x0F, 0x00, 0x01, 0x80, 0x00, 0x80, 0x01, 0x80, 0x0F, 0x00,
	// 0x77 'w'
	0x0F, 0x80, 0x0F, 0x80, 0x03, 0x80, 0x03, 0x80, 0x00, 0x80, 0x0F, 0x80,
	// 0x78 'x'
	0x08, 0x80, 0x0C, 0x80, 0x07, 0x80, 0x07, 0x00, 0x05, 0x80, 0x0C, 0x80,
	// 0x79 'y'
	0x0F, 0x90, 0x0F, 0x90, 0x00, 0x90, 0x00, 0xB0, 0x0F, 0xE0, 0x0F, 0xC0,
	// 0x7A 'z'
	0x0C, 0x80, 0x0D, 0x80, 0x0F, 0x80, 0x0C, 0x80, 0x0C, 0x80, 0x08, 0x80,
	// 0x7B '{'
	0x00, 0x00, 0x04, 0x00, 0x3F, 0x80, 0x3F, 0x80, 0x20, 0x80, 0x20, 0x80,
	// 0x7C '|'
	0x00, 0x00, 0x00, 0x00, 0x3F, 0x80, 0x3F, 0x80, 0x00, 0x00, 0x00, 0x00,
	// 0x7D '}'
	0x00, 0x00, 0x20, 0x80, 0x3F, 0x80, 0x3F, 0x80, 0x04, 0x00, 0x04, 0x00,
	// 0x7E '~'
	0x20, 0x00, 0x20, 0x00, 0x20, 0x00, 0x20, 0x00, 0x20, 0x00, 0x20, 0x00,
}
