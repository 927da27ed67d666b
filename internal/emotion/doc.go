// Package emotion defines the label vocabulary produced by the classifier
// and the structure mappings that turn a label sequence into a generation
// prompt.
//
// Two interchangeable mappings exist: grammatical mode assigns each label a
// part-of-speech role, functional mode assigns each label a Jakobsonian
// communicative function. Both are total over the vocabulary and drop
// unknown labels rather than failing, so a misbehaving classifier can never
// break prompt construction.
//
// Prompt builders never return an empty string: an empty tag sequence falls
// back to a documented default structure per mode.
package emotion
