// Command overdub tracks album production progress from the terminal: songs,
// their production stages, tempo/key/length metadata, and the release
// countdown, persisted locally between invocations.
package main
