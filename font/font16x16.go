package font

// Glyph data for the 16x16 numeric table ('0'..':').
var font16x16Data = [...]byte{
	// 0x30 '0'
	0x0F, 0xC0, 0x0F, 0xC0, 0x1F, 0xE0, 0x1F, 0xE0, 0x30, 0x30, 0x30, 0x30,
	0x23, 0x10, 0x23, 0x10, 0x23, 0x10, 0x23, 0x10, 0x30, 0x30, 0x30, 0x30,
	0x1F, 0xE0, 0x1F, 0xE0, 0x0F, 0xC0, 0x0F, 0xC0,
	// 0x31 '1'
	0x00, 0x00, 0x00, 0x00, 0x08, 0x10, 0x08, 0x10, 0x18, 0x10, 0x18, 0x10,
	0x3F, 0xF0, 0x3F, 0xF0, 0x3F, 0xF0, 0x3F, 0xF0, 0x00, 0x10, 0x00, 0x10,
	0x00, 0x10, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00,
	// 0x32 '2'
	0x10, 0x70, 0x10, 0x70, 0x30, 0xF0, 0x30, 0xF0, 0x21, 0x90, 0x21, 0x90,
	0x23, 0x10, 0x23, 0x10, 0x26, 0x10, 0x26, 0x10, 0x3C, 0x30, 0x3C, 0x30,
	0x18, 0x30, 0x18, 0x30, 0x00, 0x00, 0x00, 0x00,
	// 0x33 '3'
	0x10, 0x20, 0x10, 0x20, 0x30, 0x30, 0x30, 0x30, 0x22, 0x10, 0x22, 0x10,
	0x22, 0x10, 0x22, 0x10, 0x22, 0x10, 0x22, 0x10, 0x3F, 0xF0, 0x3F, 0xF0,
	0x1D, 0xE0, 0x1D, 0xE0, 0x00, 0x00, 0x00, 0x00,
	// 0x34 '4'
	0x03, 0x00, 0x03, 0x00, 0x07, 0x00, 0x07, 0x00, 0x0D, 0x00, 0x0D, 0x00,
	0x19, 0x10, 0x19, 0x10, 0x3F, 0xF0, 0x3F, 0xF0, 0x3F, 0xF0, 0x3F, 0xF0,
	0x01, 0x10, 0x01, 0x10, 0x00, 0x00, 0x00, 0x00,
	// 0x35 '5'
	0x3E, 0x20, 0x3E, 0x20, 0x3E, 0x30, 0x3E, 0x30, 0x22, 0x10, 0x22, 0x10,
	0x22, 0x10, 0x22, 0x10, 0x22, 0x10, 0x22, 0x10, 0x23, 0xF0, 0x23, 0xF0,
	0x21, 0xE0, 0x21, 0xE0, 0x00, 0x00, 0x00, 0x00,
	// 0x36 '6'
	0x0F, 0xE0, 0x0F, 0xE0, 0x1F, 0xF0, 0x1F, 0xF0, 0x32, 0x10, 0x32, 0x10,
	0x22, 0x10, 0x22, 0x10, 0x22, 0x10, 0x22, 0x10, 0x03, 0xF0, 0x03, 0xF0,
	0x01, 0xE0, 0x01, 0xE0, 0x00, 0x00, 0x00, 0x00,
	// 0x37 '7'
	0x30, 0x00, 0x30, 0x00, 0x30, 0x00, 0x30, 0x00, 0x20, 0xF0, 0x20, 0xF0,
	0x21, 0xF0, 0x21, 0xF0, 0x23, 0x00, 0x23, 0x00, 0x3E, 0x00, 0x3E, 0x00,
	0x3C, 0x00, 0x3C, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 0x38 '8'
	0x1D, 0xE0, 0x1D, 0xE0, 0x3F, 0xF0, 0x3F, 0xF0, 0x22, 0x10, 0x22, 0x10,
	0x22, 0x10, 0x22, 0x10, 0x22, 0x10, 0x22, 0x10, 0x3F, 0xF0, 0x3F, 0xF0,
	0x1D, 0xE0, 0x1D, 0xE0, 0x00, 0x00, 0x00, 0x00,
	// 0x39 '9'
	0x1C, 0x00, 0x1C, 0x00, 0x3E, 0x10, 0x3E, 0x10, 0x22, 0x10, 0x22, 0x10,
	0x22, 0x10, 0x22, 0x10, 0x22, 0x30, 0x22, 0x30, 0x3F, 0xE0, 0x3F, 0xE0,
	0x1F, 0xC0, 0x1F, 0xC0, 0x00, 0x00, 0x00, 0x00,
	// 0x3A ':'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x0C, 0x60, 0x0C, 0x60, 0x0C, 0x60, 0x0C, 0x60, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}
