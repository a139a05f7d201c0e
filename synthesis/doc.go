// Package synthesis defines the interfaces to the external speech
// collaborators and orchestrates per-chunk synthesis.
//
// The synchronization core never synthesizes audio, measures files, or
// touches a filesystem itself. Those concerns live behind three small
// interfaces: [Engine] converts text to audio, [Measurer] recovers sample
// counts from stored audio bytes, and [Cache] is a content-addressed
// key-value store for synthesized audio. Embedders supply implementations
// backed by their TTS engine of choice and their own storage; [MemoryCache]
// is provided for tests and short-lived sessions.
//
// [Pipeline] fans chunk synthesis out over a bounded worker pool. Each
// chunk's word timings are computed immediately after that chunk's own
// audio duration is known; no chunk's timing depends on any other chunk.
// Cancelling the pipeline's context abandons unstarted work, but results
// already computed remain valid and are returned.
package synthesis
