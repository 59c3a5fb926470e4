// This file is part of nesgo.
//
// nesgo is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nesgo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nesgo.  If not, see <https://www.gnu.org/licenses/>.

package cpu

// instruction is one row of the 256-entry static dispatch table: addressing
// mode, base cycle count, and the operation to execute once the address has
// been resolved.
type instruction struct {
	name   string
	mode   Mode
	cycles uint8
	op     func(*CPU, Mode) bool
}

// table is indexed directly by opcode byte. Every official 6502 mnemonic is
// present, plus the documented "illegal" opcodes games rely on (§4.1).
var table = [256]instruction{
	0x00: {"BRK", ModeImplied, 7, opBRK},
	0x01: {"ORA", ModeIndirectX, 6, opORA},
	0x02: {"JAM", ModeImplied, 2, opJAM},
	0x03: {"SLO", ModeIndirectX, 8, opSLO},
	0x04: {"NOP", ModeZeroPage, 3, opNOPRead},
	0x05: {"ORA", ModeZeroPage, 3, opORA},
	0x06: {"ASL", ModeZeroPage, 5, opASL},
	0x07: {"SLO", ModeZeroPage, 5, opSLO},
	0x08: {"PHP", ModeImplied, 3, opPHP},
	0x09: {"ORA", ModeImmediate, 2, opORA},
	0x0A: {"ASL", ModeAccumulator, 2, opASL},
	0x0B: {"ANC", ModeImmediate, 2, opANC},
	0x0C: {"NOP", ModeAbsolute, 4, opNOPRead},
	0x0D: {"ORA", ModeAbsolute, 4, opORA},
	0x0E: {"ASL", ModeAbsolute, 6, opASL},
	0x0F: {"SLO", ModeAbsolute, 6, opSLO},

	0x10: {"BPL", ModeRelative, 2, opBPL},
	0x11: {"ORA", ModeIndirectY, 5, opORA},
	0x12: {"JAM", ModeImplied, 2, opJAM},
	0x13: {"SLO", ModeIndirectY, 8, opSLO},
	0x14: {"NOP", ModeZeroPageX, 4, opNOPRead},
	0x15: {"ORA", ModeZeroPageX, 4, opORA},
	0x16: {"ASL", ModeZeroPageX, 6, opASL},
	0x17: {"SLO", ModeZeroPageX, 6, opSLO},
	0x18: {"CLC", ModeImplied, 2, opCLC},
	0x19: {"ORA", ModeAbsoluteY, 4, opORA},
	0x1A: {"NOP", ModeImplied, 2, opNOP},
	0x1B: {"SLO", ModeAbsoluteY, 7, opSLO},
	0x1C: {"NOP", ModeAbsoluteX, 4, opNOPRead},
	0x1D: {"ORA", ModeAbsoluteX, 4, opORA},
	0x1E: {"ASL", ModeAbsoluteX, 7, opASL},
	0x1F: {"SLO", ModeAbsoluteX, 7, opSLO},

	0x20: {"JSR", ModeAbsolute, 6, opJSR},
	0x21: {"AND", ModeIndirectX, 6, opAND},
	0x22: {"JAM", ModeImplied, 2, opJAM},
	0x23: {"RLA", ModeIndirectX, 8, opRLA},
	0x24: {"BIT", ModeZeroPage, 3, opBIT},
	0x25: {"AND", ModeZeroPage, 3, opAND},
	0x26: {"ROL", ModeZeroPage, 5, opROL},
	0x27: {"RLA", ModeZeroPage, 5, opRLA},
	0x28: {"PLP", ModeImplied, 4, opPLP},
	0x29: {"AND", ModeImmediate, 2, opAND},
	0x2A: {"ROL", ModeAccumulator, 2, opROL},
	0x2B: {"ANC", ModeImmediate, 2, opANC},
	0x2C: {"BIT", ModeAbsolute, 4, opBIT},
	0x2D: {"AND", ModeAbsolute, 4, opAND},
	0x2E: {"ROL", ModeAbsolute, 6, opROL},
	0x2F: {"RLA", ModeAbsolute, 6, opRLA},

	0x30: {"BMI", ModeRelative, 2, opBMI},
	0x31: {"AND", ModeIndirectY, 5, opAND},
	0x32: {"JAM", ModeImplied, 2, opJAM},
	0x33: {"RLA", ModeIndirectY, 8, opRLA},
	0x34: {"NOP", ModeZeroPageX, 4, opNOPRead},
	0x35: {"AND", ModeZeroPageX, 4, opAND},
	0x36: {"ROL", ModeZeroPageX, 6, opROL},
	0x37: {"RLA", ModeZeroPageX, 6, opRLA},
	0x38: {"SEC", ModeImplied, 2, opSEC},
	0x39: {"AND", ModeAbsoluteY, 4, opAND},
	0x3A: {"NOP", ModeImplied, 2, opNOP},
	0x3B: {"RLA", ModeAbsoluteY, 7, opRLA},
	0x3C: {"NOP", ModeAbsoluteX, 4, opNOPRead},
	0x3D: {"AND", ModeAbsoluteX, 4, opAND},
	0x3E: {"ROL", ModeAbsoluteX, 7, opROL},
	0x3F: {"RLA", ModeAbsoluteX, 7, opRLA},

	0x40: {"RTI", ModeImplied, 6, opRTI},
	0x41: {"EOR", ModeIndirectX, 6, opEOR},
	0x42: {"JAM", ModeImplied, 2, opJAM},
	0x43: {"SRE", ModeIndirectX, 8, opSRE},
	0x44: {"NOP", ModeZeroPage, 3, opNOPRead},
	0x45: {"EOR", ModeZeroPage, 3, opEOR},
	0x46: {"LSR", ModeZeroPage, 5, opLSR},
	0x47: {"SRE", ModeZeroPage, 5, opSRE},
	0x48: {"PHA", ModeImplied, 3, opPHA},
	0x49: {"EOR", ModeImmediate, 2, opEOR},
	0x4A: {"LSR", ModeAccumulator, 2, opLSR},
	0x4B: {"ALR", ModeImmediate, 2, opALR},
	0x4C: {"JMP", ModeAbsolute, 3, opJMP},
	0x4D: {"EOR", ModeAbsolute, 4, opEOR},
	0x4E: {"LSR", ModeAbsolute, 6, opLSR},
	0x4F: {"SRE", ModeAbsolute, 6, opSRE},

	0x50: {"BVC", ModeRelative, 2, opBVC},
	0x51: {"EOR", ModeIndirectY, 5, opEOR},
	0x52: {"JAM", ModeImplied, 2, opJAM},
	0x53: {"SRE", ModeIndirectY, 8, opSRE},
	0x54: {"NOP", ModeZeroPageX, 4, opNOPRead},
	0x55: {"EOR", ModeZeroPageX, 4, opEOR},
	0x56: {"LSR", ModeZeroPageX, 6, opLSR},
	0x57: {"SRE", ModeZeroPageX, 6, opSRE},
	0x58: {"CLI", ModeImplied, 2, opCLI},
	0x59: {"EOR", ModeAbsoluteY, 4, opEOR},
	0x5A: {"NOP", ModeImplied, 2, opNOP},
	0x5B: {"SRE", ModeAbsoluteY, 7, opSRE},
	0x5C: {"NOP", ModeAbsoluteX, 4, opNOPRead},
	0x5D: {"EOR", ModeAbsoluteX, 4, opEOR},
	0x5E: {"LSR", ModeAbsoluteX, 7, opLSR},
	0x5F: {"SRE", ModeAbsoluteX, 7, opSRE},

	0x60: {"RTS", ModeImplied, 6, opRTS},
	0x61: {"ADC", ModeIndirectX, 6, opADC},
	0x62: {"JAM", ModeImplied, 2, opJAM},
	0x63: {"RRA", ModeIndirectX, 8, opRRA},
	0x64: {"NOP", ModeZeroPage, 3, opNOPRead},
	0x65: {"ADC", ModeZeroPage, 3, opADC},
	0x66: {"ROR", ModeZeroPage, 5, opROR},
	0x67: {"RRA", ModeZeroPage, 5, opRRA},
	0x68: {"PLA", ModeImplied, 4, opPLA},
	0x69: {"ADC", ModeImmediate, 2, opADC},
	0x6A: {"ROR", ModeAccumulator, 2, opROR},
	0x6B: {"ARR", ModeImmediate, 2, opARR},
	0x6C: {"JMP", ModeIndirect, 5, opJMP},
	0x6D: {"ADC", ModeAbsolute, 4, opADC},
	0x6E: {"ROR", ModeAbsolute, 6, opROR},
	0x6F: {"RRA", ModeAbsolute, 6, opRRA},

	0x70: {"BVS", ModeRelative, 2, opBVS},
	0x71: {"ADC", ModeIndirectY, 5, opADC},
	0x72: {"JAM", ModeImplied, 2, opJAM},
	0x73: {"RRA", ModeIndirectY, 8, opRRA},
	0x74: {"NOP", ModeZeroPageX, 4, opNOPRead},
	0x75: {"ADC", ModeZeroPageX, 4, opADC},
	0x76: {"ROR", ModeZeroPageX, 6, opROR},
	0x77: {"RRA", ModeZeroPageX, 6, opRRA},
	0x78: {"SEI", ModeImplied, 2, opSEI},
	0x79: {"ADC", ModeAbsoluteY, 4, opADC},
	0x7A: {"NOP", ModeImplied, 2, opNOP},
	0x7B: {"RRA", ModeAbsoluteY, 7, opRRA},
	0x7C: {"NOP", ModeAbsoluteX, 4, opNOPRead},
	0x7D: {"ADC", ModeAbsoluteX, 4, opADC},
	0x7E: {"ROR", ModeAbsoluteX, 7, opROR},
	0x7F: {"RRA", ModeAbsoluteX, 7, opRRA},

	0x80: {"NOP", ModeImmediate, 2, opNOPRead},
	0x81: {"STA", ModeIndirectX, 6, opSTA},
	0x82: {"NOP", ModeImmediate, 2, opNOPRead},
	0x83: {"SAX", ModeIndirectX, 6, opSAX},
	0x84: {"STY", ModeZeroPage, 3, opSTY},
	0x85: {"STA", ModeZeroPage, 3, opSTA},
	0x86: {"STX", ModeZeroPage, 3, opSTX},
	0x87: {"SAX", ModeZeroPage, 3, opSAX},
	0x88: {"DEY", ModeImplied, 2, opDEY},
	0x89: {"NOP", ModeImmediate, 2, opNOPRead},
	0x8A: {"TXA", ModeImplied, 2, opTXA},
	0x8B: {"XAA", ModeImmediate, 2, opXAA},
	0x8C: {"STY", ModeAbsolute, 4, opSTY},
	0x8D: {"STA", ModeAbsolute, 4, opSTA},
	0x8E: {"STX", ModeAbsolute, 4, opSTX},
	0x8F: {"SAX", ModeAbsolute, 4, opSAX},

	0x90: {"BCC", ModeRelative, 2, opBCC},
	0x91: {"STA", ModeIndirectY, 6, opSTA},
	0x92: {"JAM", ModeImplied, 2, opJAM},
	0x93: {"AHX", ModeIndirectY, 6, opAHX},
	0x94: {"STY", ModeZeroPageX, 4, opSTY},
	0x95: {"STA", ModeZeroPageX, 4, opSTA},
	0x96: {"STX", ModeZeroPageY, 4, opSTX},
	0x97: {"SAX", ModeZeroPageY, 4, opSAX},
	0x98: {"TYA", ModeImplied, 2, opTYA},
	0x99: {"STA", ModeAbsoluteY, 5, opSTA},
	0x9A: {"TXS", ModeImplied, 2, opTXS},
	0x9B: {"TAS", ModeAbsoluteY, 5, opTAS},
	0x9C: {"SHY", ModeAbsoluteX, 5, opSHY},
	0x9D: {"STA", ModeAbsoluteX, 5, opSTA},
	0x9E: {"SHX", ModeAbsoluteY, 5, opSHX},
	0x9F: {"AHX", ModeAbsoluteY, 5, opAHX},

	0xA0: {"LDY", ModeImmediate, 2, opLDY},
	0xA1: {"LDA", ModeIndirectX, 6, opLDA},
	0xA2: {"LDX", ModeImmediate, 2, opLDX},
	0xA3: {"LAX", ModeIndirectX, 6, opLAX},
	0xA4: {"LDY", ModeZeroPage, 3, opLDY},
	0xA5: {"LDA", ModeZeroPage, 3, opLDA},
	0xA6: {"LDX", ModeZeroPage, 3, opLDX},
	0xA7: {"LAX", ModeZeroPage, 3, opLAX},
	0xA8: {"TAY", ModeImplied, 2, opTAY},
	0xA9: {"LDA", ModeImmediate, 2, opLDA},
	0xAA: {"TAX", ModeImplied, 2, opTAX},
	0xAB: {"LAX", ModeImmediate, 2, opLAX},
	0xAC: {"LDY", ModeAbsolute, 4, opLDY},
	0xAD: {"LDA", ModeAbsolute, 4, opLDA},
	0xAE: {"LDX", ModeAbsolute, 4, opLDX},
	0xAF: {"LAX", ModeAbsolute, 4, opLAX},

	0xB0: {"BCS", ModeRelative, 2, opBCS},
	0xB1: {"LDA", ModeIndirectY, 5, opLDA},
	0xB2: {"JAM", ModeImplied, 2, opJAM},
	0xB3: {"LAX", ModeIndirectY, 5, opLAX},
	0xB4: {"LDY", ModeZeroPageX, 4, opLDY},
	0xB5: {"LDA", ModeZeroPageX, 4, opLDA},
	0xB6: {"LDX", ModeZeroPageY, 4, opLDX},
	0xB7: {"LAX", ModeZeroPageY, 4, opLAX},
	0xB8: {"CLV", ModeImplied, 2, opCLV},
	0xB9: {"LDA", ModeAbsoluteY, 4, opLDA},
	0xBA: {"TSX", ModeImplied, 2, opTSX},
	0xBB: {"LAS", ModeAbsoluteY, 4, opLAS},
	0xBC: {"LDY", ModeAbsoluteX, 4, opLDY},
	0xBD: {"LDA", ModeAbsoluteX, 4, opLDA},
	0xBE: {"LDX", ModeAbsoluteY, 4, opLDX},
	0xBF: {"LAX", ModeAbsoluteY, 4, opLAX},

	0xC0: {"CPY", ModeImmediate, 2, opCPY},
	0xC1: {"CMP", ModeIndirectX, 6, opCMP},
	0xC2: {"NOP", ModeImmediate, 2, opNOPRead},
	0xC3: {"DCP", ModeIndirectX, 8, opDCP},
	0xC4: {"CPY", ModeZeroPage, 3, opCPY},
	0xC5: {"CMP", ModeZeroPage, 3, opCMP},
	0xC6: {"DEC", ModeZeroPage, 5, opDEC},
	0xC7: {"DCP", ModeZeroPage, 5, opDCP},
	0xC8: {"INY", ModeImplied, 2, opINY},
	0xC9: {"CMP", ModeImmediate, 2, opCMP},
	0xCA: {"DEX", ModeImplied, 2, opDEX},
	0xCB: {"AXS", ModeImmediate, 2, opAXS},
	0xCC: {"CPY", ModeAbsolute, 4, opCPY},
	0xCD: {"CMP", ModeAbsolute, 4, opCMP},
	0xCE: {"DEC", ModeAbsolute, 6, opDEC},
	0xCF: {"DCP", ModeAbsolute, 6, opDCP},

	0xD0: {"BNE", ModeRelative, 2, opBNE},
	0xD1: {"CMP", ModeIndirectY, 5, opCMP},
	0xD2: {"JAM", ModeImplied, 2, opJAM},
	0xD3: {"DCP", ModeIndirectY, 8, opDCP},
	0xD4: {"NOP", ModeZeroPageX, 4, opNOPRead},
	0xD5: {"CMP", ModeZeroPageX, 4, opCMP},
	0xD6: {"DEC", ModeZeroPageX, 6, opDEC},
	0xD7: {"DCP", ModeZeroPageX, 6, opDCP},
	0xD8: {"CLD", ModeImplied, 2, opCLD},
	0xD9: {"CMP", ModeAbsoluteY, 4, opCMP},
	0xDA: {"NOP", ModeImplied, 2, opNOP},
	0xDB: {"DCP", ModeAbsoluteY, 7, opDCP},
	0xDC: {"NOP", ModeAbsoluteX, 4, opNOPRead},
	0xDD: {"CMP", ModeAbsoluteX, 4, opCMP},
	0xDE: {"DEC", ModeAbsoluteX, 7, opDEC},
	0xDF: {"DCP", ModeAbsoluteX, 7, opDCP},

	0xE0: {"CPX", ModeImmediate, 2, opCPX},
	0xE1: {"SBC", ModeIndirectX, 6, opSBC},
	0xE2: {"NOP", ModeImmediate, 2, opNOPRead},
	0xE3: {"ISC", ModeIndirectX, 8, opISC},
	0xE4: {"CPX", ModeZeroPage, 3, opCPX},
	0xE5: {"SBC", ModeZeroPage, 3, opSBC},
	0xE6: {"INC", ModeZeroPage, 5, opINC},
	0xE7: {"ISC", ModeZeroPage, 5, opISC},
	0xE8: {"INX", ModeImplied, 2, opINX},
	0xE9: {"SBC", ModeImmediate, 2, opSBC},
	0xEA: {"NOP", ModeImplied, 2, opNOP},
	0xEB: {"SBC", ModeImmediate, 2, opSBC},
	0xEC: {"CPX", ModeAbsolute, 4, opCPX},
	0xED: {"SBC", ModeAbsolute, 4, opSBC},
	0xEE: {"INC", ModeAbsolute, 6, opINC},
	0xEF: {"ISC", ModeAbsolute, 6, opISC},

	0xF0: {"BEQ", ModeRelative, 2, opBEQ},
	0xF1: {"SBC", ModeIndirectY, 5, opSBC},
	0xF2: {"JAM", ModeImplied, 2, opJAM},
	0xF3: {"ISC", ModeIndirectY, 8, opISC},
	0xF4: {"NOP", ModeZeroPageX, 4, opNOPRead},
	0xF5: {"SBC", ModeZeroPageX, 4, opSBC},
	0xF6: {"INC", ModeZeroPageX, 6, opINC},
	0xF7: {"ISC", ModeZeroPageX, 6, opISC},
	0xF8: {"SED", ModeImplied, 2, opSED},
	0xF9: {"SBC", ModeAbsoluteY, 4, opSBC},
	0xFA: {"NOP", ModeImplied, 2, opNOP},
	0xFB: {"ISC", ModeAbsoluteY, 7, opISC},
	0xFC: {"NOP", ModeAbsoluteX, 4, opNOPRead},
	0xFD: {"SBC", ModeAbsoluteX, 4, opSBC},
	0xFE: {"INC", ModeAbsoluteX, 7, opINC},
	0xFF: {"ISC", ModeAbsoluteX, 7, opISC},
}
