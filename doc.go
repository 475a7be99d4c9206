/*
Package sct decodes SCT game-engine texture containers (legacy "SCT" and
"SCT2" v2 layouts) into RGBA images.

SCT stores a small fixed header followed by a single payload that may be
compressed with a raw LZ4 block variant framed by an 8-byte size prefix.
The v2 flag byte is an unreliable witness of whether the payload is really
compressed, so decoding probes the data empirically and falls back to the
raw payload when decompression does not look right.

The package focuses on practical workflows: probe a container's config,
decode the pixel data into RGBA, and hand block-compressed pathways (ETC2,
ASTC) to a pluggable block codec.
*/
package sct
