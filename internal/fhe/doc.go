// Package fhe wraps the lattigo BGV scheme for the three parties of the farm
// protocol: the client encrypts sensor values, the contract adds ciphertexts
// without decrypting them, and the decryption oracle decrypts.
//
// Integers are packed into the first 16 plaintext slots as little-endian
// 4-bit limbs. With the default plaintext modulus 65537 a ciphertext stays
// exactly decodable for up to [MaxAdditions] homomorphic additions.
package fhe
