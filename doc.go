// Package prettui provides interactive terminal selection lists and styled
// console I/O.
//
// The centerpiece is ChooseFromList, a paginated, keyboard-navigable list
// rendered in place with direct cursor addressing. Around it the package
// offers styled line readers, validating prompts, and a wrapped output
// writer so small CLI programs can compose a consistent interface from one
// import.
package prettui
