// Package cartridge implements loading and mapping of cartridge memory.
//
// Currently supported cartridge types are:
//
//	- Atari 2k / 4k
//
//	- the above with additional Superchip RAM
package cartridge
