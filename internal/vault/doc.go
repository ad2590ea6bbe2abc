// Package vault stores named secrets as individually sealed files.
//
// A vault is a directory. Each secret lives in a file named after the
// secret, whose content is exactly the sealed payload produced by the
// engine (nonce || ciphertext || tag). Files whose names start with a dot
// are reserved for vault bookkeeping (metadata, audit log, temp files).
//
// Writes go through a temporary file and a rename so a crash never leaves
// a truncated secret behind. Writers of the same name are serialized within
// a process; across processes the last rename wins.
package vault
