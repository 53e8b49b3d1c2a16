package font

// Glyph data for the 16x32 numeric table ('0'..':').
var font16x32Data = [...]byte{
	// 0x30 '0'
	0x00, 0xFF, 0xF0, 0x00, 0x00, 0xFF, 0xF0, 0x00, 0x03, 0xFF, 0xFC, 0x00,
	0x03, 0xFF, 0xFC, 0x00, 0x0F, 0x00, 0x0F, 0x00, 0x0F, 0x00, 0x0F, 0x00,
	0x0C, 0x0F, 0x03, 0x00, 0x0C, 0x0F, 0x03, 0x00, 0x0C, 0x0F, 0x03, 0x00,
	0x0C, 0x0F, 0x03, 0x00, 0x0F, 0x00, 0x0F, 0x00, 0x0F, 0x00, 0x0F, 0x00,
	0x03, 0xFF, 0xFC, 0x00, 0x03, 0xFF, 0xFC, 0x00, 0x00, 0xFF, 0xF0, 0x00,
	0x00, 0xFF, 0xF0, 0x00,
	// 0x31 '1'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x03, 0x00,
	0x00, 0xC0, 0x03, 0x00, 0x03, 0xC0, 0x03, 0x00, 0x03, 0xC0, 0x03, 0x00,
	0x0F, 0xFF, 0xFF, 0x00, 0x0F, 0xFF, 0xFF, 0x00, 0x0F, 0xFF, 0xFF, 0x00,
	0x0F, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x03, 0x00,
	0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x32 '2'
	0x03, 0x00, 0x3F, 0x00, 0x03, 0x00, 0x3F, 0x00, 0x0F, 0x00, 0xFF, 0x00,
	0x0F, 0x00, 0xFF, 0x00, 0x0C, 0x03, 0xC3, 0x00, 0x0C, 0x03, 0xC3, 0x00,
	0x0C, 0x0F, 0x03, 0x00, 0x0C, 0x0F, 0x03, 0x00, 0x0C, 0x3C, 0x03, 0x00,
	0x0C, 0x3C, 0x03, 0x00, 0x0F, 0xF0, 0x0F, 0x00, 0x0F, 0xF0, 0x0F, 0x00,
	0x03, 0xC0, 0x0F, 0x00, 0x03, 0xC0, 0x0F, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x33 '3'
	0x03, 0x00, 0x0C, 0x00, 0x03, 0x00, 0x0C, 0x00, 0x0F, 0x00, 0x0F, 0x00,
	0x0F, 0x00, 0x0F, 0x00, 0x0C, 0x0C, 0x03, 0x00, 0x0C, 0x0C, 0x03, 0x00,
	0x0C, 0x0C, 0x03, 0x00, 0x0C, 0x0C, 0x03, 0x00, 0x0C, 0x0C, 0x03, 0x00,
	0x0C, 0x0C, 0x03, 0x00, 0x0F, 0xFF, 0xFF, 0x00, 0x0F, 0xFF, 0xFF, 0x00,
	0x03, 0xF3, 0xFC, 0x00, 0x03, 0xF3, 0xFC, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x34 '4'
	0x00, 0x0F, 0x00, 0x00, 0x00, 0x0F, 0x00, 0x00, 0x00, 0x3F, 0x00, 0x00,
	0x00, 0x3F, 0x00, 0x00, 0x00, 0xF3, 0x00, 0x00, 0x00, 0xF3, 0x00, 0x00,
	0x03, 0xC3, 0x03, 0x00, 0x03, 0xC3, 0x03, 0x00, 0x0F, 0xFF, 0xFF, 0x00,
	0x0F, 0xFF, 0xFF, 0x00, 0x0F, 0xFF, 0xFF, 0x00, 0x0F, 0xFF, 0xFF, 0x00,
	0x00, 0x03, 0x03, 0x00, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x35 '5'
	0x0F, 0xFC, 0x0C, 0x00, 0x0F, 0xFC, 0x0C, 0x00, 0x0F, 0xFC, 0x0F, 0x00,
	0x0F, 0xFC, 0x0F, 0x00, 0x0C, 0x0C, 0x03, 0x00, 0x0C, 0x0C, 0x03, 0x00,
	0x0C, 0x0C, 0x03, 0x00, 0x0C, 0x0C, 0x03, 0x00, 0x0C, 0x0C, 0x03, 0x00,
	0x0C, 0x0C, 0x03, 0x00, 0x0C, 0x0F, 0xFF, 0x00, 0x0C, 0x0F, 0xFF, 0x00,
	0x0C, 0x03, 0xFC, 0x00, 0x0C, 0x03, 0xFC, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x36 '6'
	0x00, 0xFF, 0xFC, 0x00, 0x00, 0xFF, 0xFC, 0x00, 0x03, 0xFF, 0xFF, 0x00,
	0x03, 0xFF, 0xFF, 0x00, 0x0F, 0x0C, 0x03, 0x00, 0x0F, 0x0C, 0x03, 0x00,
	0x0C, 0x0C, 0x03, 0x00, 0x0C, 0x0C, 0x03, 0x00, 0x0C, 0x0C, 0x03, 0x00,
	0x0C, 0x0C, 0x03, 0x00, 0x00, 0x0F, 0xFF, 0x00, 0x00, 0x0F, 0xFF, 0x00,
	0x00, 0x03, 0xFC, 0x00, 0x00, 0x03, 0xFC, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x37 '7'
	0x0F, 0x00, 0x00, 0x00, 0x0F, 0x00, 0x00, 0x00, 0x0F, 0x00, 0x00, 0x00,
	0x0F, 0x00, 0x00, 0x00, 0x0C, 0x00, 0xFF, 0x00, 0x0C, 0x00, 0xFF, 0x00,
	0x0C, 0x03, 0xFF, 0x00, 0x0C, 0x03, 0xFF, 0x00, 0x0C, 0x0F, 0x00, 0x00,
	0x0C, 0x0F, 0x00, 0x00, 0x0F, 0xFC, 0x00, 0x00, 0x0F, 0xFC, 0x00, 0x00,
	0x0F, 0xF0, 0x00, 0x00, 0x0F, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x38 '8'
	0x03, 0xF3, 0xFC, 0x00, 0x03, 0xF3, 0xFC, 0x00, 0x0F, 0xFF, 0xFF, 0x00,
	0x0F, 0xFF, 0xFF, 0x00, 0x0C, 0x0C, 0x03, 0x00, 0x0C, 0x0C, 0x03, 0x00,
	0x0C, 0x0C, 0x03, 0x00, 0x0C, 0x0C, 0x03, 0x00, 0x0C, 0x0C, 0x03, 0x00,
	0x0C, 0x0C, 0x03, 0x00, 0x0F, 0xFF, 0xFF, 0x00, 0x0F, 0xFF, 0xFF, 0x00,
	0x03, 0xF3, 0xFC, 0x00, 0x03, 0xF3, 0xFC, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x39 '9'
	0x03, 0xF0, 0x00, 0x00, 0x03, 0xF0, 0x00, 0x00, 0x0F, 0xFC, 0x03, 0x00,
	0x0F, 0xFC, 0x03, 0x00, 0x0C, 0x0C, 0x03, 0x00, 0x0C, 0x0C, 0x03, 0x00,
	0x0C, 0x0C, 0x03, 0x00, 0x0C, 0x0C, 0x03, 0x00, 0x0C, 0x0C, 0x0F, 0x00,
	0x0C, 0x0C, 0x0F, 0x00, 0x0F, 0xFF, 0xFC, 0x00, 0x0F, 0xFF, 0xFC, 0x00,
	0x03, 0xFF, 0xF0, 0x00, 0x03, 0xFF, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// 0x3A ':'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0xF0, 0x3C, 0x00, 0x00, 0xF0, 0x3C, 0x00, 0x00, 0xF0, 0x3C, 0x00,
	0x00, 0xF0, 0x3C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}
