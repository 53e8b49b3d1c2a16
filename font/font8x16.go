package font

// Glyph data for the 8x16 ASCII table. Entries are column-major:
// two bytes per column (rows 0-7 then 8-15), bit 7 is the top row.
var font8x16Data = [...]byte{
	// 0x20 ' '
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x21 '!'
	0x00, 0x00, 0x00, 0x00, 0x1C, 0x00, 0x3F, 0xB0, 0x3F, 0xB0, 0x1C, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x22 '"'
	0x00, 0x00, 0x70, 0x00, 0x78, 0x00, 0x00, 0x00, 0x00, 0x00, 0x78, 0x00,
	0x70, 0x00, 0x00, 0x00,
	// 0x23 '#'
	0x04, 0x40, 0x1F, 0xF0, 0x1F, 0xF0, 0x04, 0x40, 0x1F, 0xF0, 0x1F, 0xF0,
	0x04, 0x40, 0x00, 0x00,
	// 0x24 '$'
	0x1C, 0x60, 0x3E, 0x30, 0x22, 0x10, 0xE2, 0x1C, 0xE2, 0x1C, 0x33, 0xF0,
	0x19, 0xE0, 0x00, 0x00,
	// 0x25 '%'
	0x0C, 0x30, 0x0C, 0x60, 0x00, 0xC0, 0x01, 0x80, 0x03, 0x00, 0x06, 0x30,
	0x0C, 0x30, 0x00, 0x00,
	// 0x26 '&'
	0x01, 0xE0, 0x1B, 0xF0, 0x3E, 0x10, 0x27, 0x10, 0x3D, 0xE0, 0x1B, 0xF0,
	0x02, 0x10, 0x00, 0x00,
	// 0x27 '\''
	0x00, 0x00, 0x08, 0x00, 0x78, 0x00, 0x70, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x28 '('
	0x00, 0x00, 0x00, 0x00, 0x0F, 0xC0, 0x1F, 0xE0, 0x30, 0x30, 0x20, 0x10,
	0x00, 0x00, 0x00, 0x00,
	// 0x29 ')'
	0x00, 0x00, 0x00, 0x00, 0x20, 0x10, 0x30, 0x30, 0x1F, 0xE0, 0x0F, 0xC0,
	0x00, 0x00, 0x00, 0x00,
	// 0x2A '*'
	0x01, 0x00, 0x05, 0x40, 0x07, 0xC0, 0x03, 0x80, 0x03, 0x80, 0x07, 0xC0,
	0x05, 0x40, 0x01, 0x00,
	// 0x2B '+'
	0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x07, 0xC0, 0x07, 0xC0, 0x01, 0x00,
	0x01, 0x00, 0x00, 0x00,
	// 0x2C ','
	0x00, 0x00, 0x00, 0x00, 0x00, 0x08, 0x00, 0x78, 0x00, 0x70, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x2D '-'
	0x01, 0x00, 0x01, 0x00, 0x01, 0x00, 0x01, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x01, 0x00, 0x00, 0x00,
	// 0x2E '.'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x30, 0x00, 0x30, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x2F '/'
	0x00, 0x30, 0x00, 0x60, 0x00, 0xC0, 0x01, 0x80, 0x03, 0x00, 0x06, 0x00,
	0x0C, 0x00, 0x00, 0x00,
	// 0x30 '0'
	0x0F, 0xC0, 0x1F, 0xE0, 0x30, 0x30, 0x23, 0x10, 0x23, 0x10, 0x30, 0x30,
	0x1F, 0xE0, 0x0F, 0xC0,
	// 0x31 '1'
	0x00, 0x00, 0x08, 0x10, 0x18, 0x10, 0x3F, 0xF0, 0x3F, 0xF0, 0x00, 0x10,
	0x00, 0x10, 0x00, 0x00,
	// 0x32 '2'
	0x10, 0x70, 0x30, 0xF0, 0x21, 0x90, 0x23, 0x10, 0x26, 0x10, 0x3C, 0x30,
	0x18, 0x30, 0x00, 0x00,
	// 0x33 '3'
	0x10, 0x20, 0x30, 0x30, 0x22, 0x10, 0x22, 0x10, 0x22, 0x10, 0x3F, 0xF0,
	0x1D, 0xE0, 0x00, 0x00,
	// 0x34 '4'
	0x03, 0x00, 0x07, 0x00, 0x0D, 0x00, 0x19, 0x10, 0x3F, 0xF0, 0x3F, 0xF0,
	0x01, 0x10, 0x00, 0x00,
	// 0x35 '5'
	0x3E, 0x20, 0x3E, 0x30, 0x22, 0x10, 0x22, 0x10, 0x22, 0x10, 0x23, 0xF0,
	0x21, 0xE0, 0x00, 0x00,
	// 0x36 '6'
	0x0F, 0xE0, 0x1F, 0xF0, 0x32, 0x10, 0x22, 0x10, 0x22, 0x10, 0x03, 0xF0,
	0x01, 0xE0, 0x00, 0x00,
	// 0x37 '7'
	0x30, 0x00, 0x30, 0x00, 0x20, 0xF0, 0x21, 0xF0, 0x23, 0x00, 0x3E, 0x00,
	0x3C, 0x00, 0x00, 0x00,
	// 0x38 '8'
	0x1D, 0xE0, 0x3F, 0xF0, 0x22, 0x10, 0x22, 0x10, 0x22, 0x10, 0x3F, 0xF0,
	0x1D, 0xE0, 0x00, 0x00,
	// 0x39 '9'
	0x1C, 0x00, 0x3E, 0x10, 0x22, 0x10, 0x22, 0x10, 0x22, 0x30, 0x3F, 0xE0,
	0x1F, 0xC0, 0x00, 0x00,
	// 0x3A ':'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x60, 0x0C, 0x60, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x3B ';'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x0C, 0x70, 0x0C, 0x60, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x3C '<'
	0x00, 0x00, 0x01, 0x00, 0x03, 0x80, 0x06, 0xC0, 0x0C, 0x60, 0x18, 0x30,
	0x10, 0x10, 0x00, 0x00,
	// 0x3D '='
	0x00, 0x00, 0x04, 0x80, 0x04, 0x80, 0x04, 0x80, 0x04, 0x80, 0x04, 0x80,
	0x04, 0x80, 0x00, 0x00,
	// 0x3E '>'
	0x00, 0x00, 0x10, 0x10, 0x18, 0x30, 0x0C, 0x60, 0x06, 0xC0, 0x03, 0x80,
	0x01, 0x00, 0x00, 0x00,
	// 0x3F '?'
	0x18, 0x00, 0x38, 0x00, 0x20, 0x00, 0x23, 0xB0, 0x27, 0xB0, 0x3C, 0x00,
	0x18, 0x00, 0x00, 0x00,
	// 0x40 '@'
	0x0F, 0xE0, 0x1F, 0xF0, 0x10, 0x10, 0x13, 0xD0, 0x13, 0xD0, 0x1F, 0xD0,
	0x0F, 0x80, 0x00, 0x00,
	// 0x41 'A'
	0x07, 0xF0, 0x0F, 0xF0, 0x19, 0x00, 0x31, 0x00, 0x19, 0x00, 0x0F, 0xF0,
	0x07, 0xF0, 0x00, 0x00,
	// 0x42 'B'
	0x20, 0x10, 0x3F, 0xF0, 0x3F, 0xF0, 0x22, 0x10, 0x22, 0x10, 0x3F, 0xF0,
	0x1D, 0xE0, 0x00, 0x00,
	// 0x43 'C'
	0x0F, 0xC0, 0x1F, 0xE0, 0x30, 0x30, 0x20, 0x10, 0x20, 0x10, 0x30, 0x30,
	0x18, 0x60, 0x00, 0x00,
	// 0x44 'D'
	0x20, 0x10, 0x3F, 0xF0, 0x3F, 0xF0, 0x20, 0x10, 0x30, 0x30, 0x1F, 0xE0,
	0x0F, 0xC0, 0x00, 0x00,
	// 0x45 'E'
	0x20, 0x10, 0x3F, 0xF0, 0x3F, 0xF0, 0x22, 0x10, 0x27, 0x10, 0x30, 0x30,
	0x38, 0x70, 0x00, 0x00,
	// 0x46 'F'
	0x20, 0x10, 0x3F, 0xF0, 0x3F, 0xF0, 0x22, 0x10, 0x27, 0x00, 0x30, 0x00,
	0x38, 0x00, 0x00, 0x00,
	// 0x47 'G'
	0x0F, 0xC0, 0x1F, 0xE0, 0x30, 0x30, 0x21, 0x10, 0x21, 0x10, 0x31, 0xE0,
	0x19, 0xF0, 0x00, 0x00,
	// 0x48 'H'
	0x3F, 0xF0, 0x3F, 0xF0, 0x02, 0x00, 0x02, 0x00, 0x02, 0x00, 0x3F, 0xF0,
	0x3F, 0xF0, 0x00, 0x00,
	// 0x49 'I'
	0x00, 0x00, 0x00, 0x00, 0x20, 0x10, 0x3F, 0xF0, 0x3F, 0xF0, 0x20, 0x10,
	0x00, 0x00, 0x00, 0x00,
	// 0x4A 'J'
	0x00, 0xE0, 0x00, 0xF0, 0x00, 0x10, 0x20, 0x10, 0x3F, 0xF0, 0x3F, 0xE0,
	0x20, 0x00, 0x00, 0x00,
	// 0x4B 'K'
	0x20, 0x10, 0x3F, 0xF0, 0x3F, 0xF0, 0x03, 0x00, 0x07, 0x80, 0x3C, 0xF0,
	0x38, 0x70, 0x00, 0x00,
	// 0x4C 'L'
	0x20, 0x10, 0x3F, 0xF0, 0x3F, 0xF0, 0x20, 0x10, 0x00, 0x10, 0x00, 0x30,
	0x00, 0x70, 0x00, 0x00,
	// 0x4D 'M'
	0x3F, 0xF0, 0x3F, 0xF0, 0x1C, 0x00, 0x0E, 0x00, 0x0E, 0x00, 0x1C, 0x00,
	0x3F, 0xF0, 0x3F, 0xF0,
	// 0x4E 'N'
	0x3F, 0xF0, 0x3F, 0xF0, 0x1C, 0x00, 0x0E, 0x00, 0x07, 0x00, 0x3F, 0xF0,
	0x3F, 0xF0, 0x00, 0x00,
	// 0x4F 'O'
	0x1F, 0xE0, 0x3F, 0xF0, 0x20, 0x10, 0x20, 0x10, 0x20, 0x10, 0x3F, 0xF0,
	0x1F, 0xE0, 0x00, 0x00,
	// 0x50 'P'
	0x20, 0x10, 0x3F, 0xF0, 0x3F, 0xF0, 0x22, 0x10, 0x22, 0x00, 0x3E, 0x00,
	0x1C, 0x00, 0x00, 0x00,
	// 0x51 'Q'
	0x1F, 0xE0, 0x3F, 0xF0, 0x20, 0x10, 0x20, 0x70, 0x20, 0x3C, 0x3F, 0xFC,
	0x1F, 0xE4, 0x00, 0x00,
	// 0x52 'R'
	0x20, 0x10, 0x3F, 0xF0, 0x3F, 0xF0, 0x22, 0x00, 0x23, 0x00, 0x3F, 0xF0,
	0x1C, 0xF0, 0x00, 0x00,
	// 0x53 'S'
	0x18, 0x60, 0x3C, 0x70, 0x26, 0x10, 0x22, 0x10, 0x23, 0x10, 0x39, 0xF0,
	0x18, 0xE0, 0x00, 0x00,
	// 0x54 'T'
	0x38, 0x00, 0x30, 0x00, 0x20, 0x10, 0x3F, 0xF0, 0x3F, 0xF0, 0x20, 0x10,
	0x30, 0x00, 0x38, 0x00,
	// 0x55 'U'
	0x3F, 0xE0, 0x3F, 0xF0, 0x00, 0x10, 0x00, 0x10, 0x00, 0x10, 0x3F, 0xF0,
	0x3F, 0xE0, 0x00, 0x00,
	// 0x56 'V'
	0x3F, 0x80, 0x3F, 0xC0, 0x00, 0x60, 0x00, 0x30, 0x00, 0x30, 0x00, 0x60,
	0x3F, 0xC0, 0x3F, 0x80,
	// 0x57 'W'
	0x3F, 0xC0, 0x3F, 0xF0, 0x00, 0x70, 0x01, 0xC0, 0x01, 0xC0, 0x00, 0x70,
	0x3F, 0xF0, 0x3F, 0xC0,
	// 0x58 'X'
	0x30, 0x30, 0x38, 0x70, 0x0C, 0xC0, 0x07, 0x80, 0x07, 0x80, 0x0C, 0xC0,
	0x38, 0x70, 0x30, 0x30,
	// 0x59 'Y'
	0x38, 0x00, 0x3C, 0x00, 0x06, 0x10, 0x03, 0xF0, 0x03, 0xF0, 0x06, 0x10,
	0x3C, 0x00, 0x38, 0x00,
	// 0x5A 'Z'
	0x38, 0x70, 0x30, 0xF0, 0x21, 0x90, 0x23, 0x10, 0x26, 0x10, 0x2C, 0x10,
	0x38, 0x30, 0x30, 0x70,
	// 0x5B '['
	0x00, 0x00, 0x00, 0x00, 0x3F, 0xF0, 0x3F, 0xF0, 0x20, 0x10, 0x20, 0x10,
	0x00, 0x00, 0x00, 0x00,
	// 0x5C '\'
	0x1C, 0x00, 0x0E, 0x00, 0x07, 0x00, 0x03, 0x80, 0x01, 0xC0, 0x00, 0xE0,
	0x00, 0x70, 0x00, 0x00,
	// 0x5D ']'
	0x00, 0x00, 0x00, 0x00, 0x20, 0x10, 0x20, 0x10, 0x3F, 0xF0, 0x3F, 0xF0,
	0x00, 0x00, 0x00, 0x00,
	// 0x5E '^'
	0x10, 0x00, 0x30, 0x00, 0x60, 0x00, 0xC0, 0x00, 0x60, 0x00, 0x30, 0x00,
	0x10, 0x00, 0x00, 0x00,
	// 0x5F '_'
	0x00, 0x04, 0x00, 0x04, 0x00, 0x04, 0x00, 0x04, 0x00, 0x04, 0x00, 0x04,
	0x00, 0x04, 0x00, 0x04,
	// 0x60 '`'
	0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0xE0, 0x00, 0x20, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x61 'a'
	0x00, 0xE0, 0x05, 0xF0, 0x05, 0x10, 0x05, 0x10, 0x07, 0xE0, 0x03, 0xF0,
	0x00, 0x10, 0x00, 0x00,
	// 0x62 'b'
	0x20, 0x00, 0x3F, 0xF0, 0x3F, 0xF0, 0x04, 0x10, 0x06, 0x10, 0x03, 0xF0,
	0x01, 0xE0, 0x00, 0x00,
	// 0x63 'c'
	0x03, 0xE0, 0x07, 0xF0, 0x04, 0x10, 0x04, 0x10, 0x04, 0x10, 0x06, 0x30,
	0x02, 0x20, 0x00, 0x00,
	// 0x64 'd'
	0x01, 0xE0, 0x03, 0xF0, 0x06, 0x10, 0x24, 0x10, 0x3F, 0xE0, 0x3F, 0xF0,
	0x00, 0x10, 0x00, 0x00,
	// 0x65 'e'
	0x03, 0xE0, 0x07, 0xF0, 0x05, 0x10, 0x05, 0x10, 0x05, 0x10, 0x07, 0x30,
	0x03, 0x20, 0x00, 0x00,
	// 0x66 'f'
	0x02, 0x10, 0x1F, 0xF0, 0x3F, 0xF0, 0x22, 0x10, 0x30, 0x00, 0x18, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x67 'g'
	0x03, 0xE4, 0x07, 0xF6, 0x04, 0x12, 0x04, 0x12, 0x03, 0xFE, 0x07, 0xFC,
	0x04, 0x00, 0x00, 0x00,
	// 0x68 'h'
	0x20, 0x10, 0x3F, 0xF0, 0x3F, 0xF0, 0x02, 0x00, 0x04, 0x00, 0x07, 0xF0,
	0x03, 0xF0, 0x00, 0x00,
	// 0x69 'i'
	0x00, 0x00, 0x00, 0x00, 0x04, 0x10, 0x37, 0xF0, 0x37, 0xF0, 0x00, 0x10,
	0x00, 0x00, 0x00, 0x00,
	// 0x6A 'j'
	0x00, 0x00, 0x00, 0x0C, 0x00, 0x0E, 0x00, 0x02, 0x04, 0x02, 0x37, 0xFE,
	0x37, 0xFC, 0x00, 0x00,
	// 0x6B 'k'
	0x20, 0x10, 0x3F, 0xF0, 0x3F, 0xF0, 0x01, 0x80, 0x03, 0xC0, 0x06, 0x70,
	0x04, 0x30, 0x00, 0x00,
	// 0x6C 'l'
	0x00, 0x00, 0x00, 0x00, 0x20, 0x10, 0x3F, 0xF0, 0x3F, 0xF0, 0x00, 0x10,
	0x00, 0x00, 0x00, 0x00,
	// 0x6D 'm'
	0x07, 0xF0, 0x07, 0xF0, 0x06, 0x00, 0x03, 0xF0, 0x03, 0xF0, 0x06, 0x00,
	0x07, 0xF0, 0x03, 0xF0,
	// 0x6E 'n'
	0x04, 0x00, 0x07, 0xF0, 0x03, 0xF0, 0x04, 0x00, 0x04, 0x00, 0x07, 0xF0,
	0x03, 0xF0, 0x00, 0x00,
	// 0x6F 'o'
	0x03, 0xE0, 0x07, 0xF0, 0x04, 0x10, 0x04, 0x10, 0x04, 0x10, 0x07, 0xF0,
	0x03, 0xE0, 0x00, 0x00,
	// 0x70 'p'
	0x04, 0x02, 0x07, 0xFE, 0x03, 0xFE, 0x04, 0x12, 0x04, 0x10, 0x07, 0xF0,
	0x03, 0xE0, 0x00, 0x00,
	// 0x71 'q'
	0x03, 0xE0, 0x07, 0xF0, 0x04, 0x10, 0x04, 0x12, 0x03, 0xFE, 0x07, 0xFE,
	0x04, 0x02, 0x00, 0x00,
	// 0x72 'r'
	0x04, 0x10, 0x07, 0xF0, 0x03, 0xF0, 0x06, 0x10, 0x04, 0x00, 0x07, 0x00,
	0x03, 0x00, 0x00, 0x00,
	// 0x73 's'
	0x02, 0x20, 0x07, 0x30, 0x05, 0x90, 0x04, 0x90, 0x04, 0xD0, 0x06, 0x70,
	0x02, 0x20, 0x00, 0x00,
	// 0x74 't'
	0x04, 0x00, 0x04, 0x00, 0x1F, 0xE0, 0x3F, 0xF0, 0x04, 0x10, 0x04, 0x30,
	0x00, 0x20, 0x00, 0x00,
	// 0x75 'u'
	0x07, 0xE0, 0x07, 0xF0, 0x00, 0x10, 0x00, 0x10, 0x07, 0xE0, 0x07, 0xF0,
	0x00, 0x10, 0x00, 0x00,
	// 0x76 'v'
	0x07, 0x80, 0x07, 0xC0, 0x00, 0x60, 0x00, 0x30, 0x00, 0x30, 0x00, 0x60,
	0x07, 0xC0, 0x07, 0x80,
	// 0x77 'w'
	0x07, 0xE0, 0x07, 0xF0, 0x00, 0x30, 0x00, 0xE0, 0x00, 0xE0, 0x00, 0x30,
	0x07, 0xF0, 0x07, 0xE0,
	// 0x78 'x'
	0x04, 0x10, 0x06, 0x30, 0x03, 0x60, 0x01, 0xC0, 0x01, 0xC0, 0x03, 0x60,
	0x06, 0x30, 0x04, 0x10,
	// 0x79 'y'
	0x07, 0xE2, 0x07, 0xF2, 0x00, 0x12, 0x00, 0x12, 0x00, 0x16, 0x07, 0xFC,
	0x07, 0xF8, 0x00, 0x00,
	// 0x7A 'z'
	0x06, 0x30, 0x06, 0x70, 0x04, 0xD0, 0x05, 0x90, 0x07, 0x10, 0x06, 0x30,
	0x04, 0x30, 0x00, 0x00,
	// 0x7B '{'
	0x00, 0x00, 0x02, 0x00, 0x02, 0x00, 0x1F, 0xE0, 0x3D, 0xF0, 0x20, 0x10,
	0x20, 0x10, 0x00, 0x00,
	// 0x7C '|'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3D, 0xF0, 0x3D, 0xF0, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x7D '}'
	0x00, 0x00, 0x20, 0x10, 0x20, 0x10, 0x3D, 0xF0, 0x1F, 0xE0, 0x02, 0x00,
	0x02, 0x00, 0x00, 0x00,
	// 0x7E '~'
	0x10, 0x00, 0x30, 0x00, 0x20, 0x00, 0x30, 0x00, 0x10, 0x00, 0x30, 0x00,
	0x20, 0x00, 0x00, 0x00,
}
