/*
Package dump persists the state of the deployed Token contract along with its
storage, and reads such dumps back.

A dump is identified by the label of the network it was taken from and the
block height. It consists of two human-readable files:

	'<label>-<block>-contract.json': JSON-encoded contract state
	'<label>-<block>-storage.csv': CSV of the contract storage

Storage CSV rows are 'table,key,value' where table is the name of the storage
table the item belongs to (see Table) and binary key-value are base64-encoded.
*/
package dump
