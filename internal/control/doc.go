// Package control implements the OBS control core: scene switching, source
// discovery inside grouped scenes, audio capability decoding, mute
// orchestration, and scene item visibility.
//
// The Controller never caches OBS state. Every operation re-fetches what it
// needs through the Gateway, so chat commands always act on the live scene
// collection even while an operator edits it in the OBS UI.
//
// Absence is a normal outcome, not a fault: operations that target a named
// source report "not found" through a boolean result and reserve the error
// return for gateway failures.
package control
