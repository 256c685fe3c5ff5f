// Package play renders frequencies as sine tones through the system speaker.
//
// It is the audio collaborator for the intonation core: it consumes plain
// frequencies in Hz and knows nothing about ratios, lattices, or interval
// names. The CLI derives frequencies (middle C times a ratio's floating
// value) and hands them over.
//
// Playback is synchronous: Sequence and Dyad block until the speaker has
// drained. Synthesis and output go through github.com/faiface/beep.
package play
