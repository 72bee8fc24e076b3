/*
Package token implements Token contract which keeps balances of multiple
fungible token symbols.

Every symbol is registered by the contract owner with the issuer and the
maximum supply. The issuer mints new tokens and distributes them. Records of
freshly distributed balances are paid for by the issuer until their owners
claim them, unclaimed balances can be recovered by the issuer at any moment.

Holders can stake a part of their balance. Staked funds stay on the balance
but can't be transferred. Unstaked funds wait for the refund delay (7 days by
default) counted from the latest unstake of the owner and are released with
Refund method. Unstake schedules refund of the owner replacing the previous
schedule, off-chain refunders follow RefundScheduled and RefundCancelled
notifications to invoke Refund in time.

# Contract notifications

Create notification. Produced when a new symbol is registered.

	Create:
	  - name: symbol
	    type: String
	  - name: precision
	    type: Integer
	  - name: issuer
	    type: Hash160
	  - name: maxSupply
	    type: Integer

UpdateToken notification. Produced when issuer or maximum supply of the
symbol is changed.

	UpdateToken:
	  - name: symbol
	    type: String
	  - name: issuer
	    type: Hash160
	  - name: maxSupply
	    type: Integer

Issue notification. Produced when new tokens are minted.

	Issue:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: symbol
	    type: String
	  - name: memo
	    type: String

Transfer notification. Produced on every transfer including the distribution
step of Issue. Both parties observe it.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: symbol
	    type: String
	  - name: memo
	    type: String

Claim notification. Produced when the balance record becomes claimed.

	Claim:
	  - name: owner
	    type: Hash160
	  - name: symbol
	    type: String
	  - name: payer
	    type: Hash160

Recover notification. Produced when the issuer takes back unclaimed balance.

	Recover:
	  - name: owner
	    type: Hash160
	  - name: symbol
	    type: String
	  - name: amount
	    type: Integer

Stake and Unstake notifications.

	Stake:
	  - name: owner
	    type: Hash160
	  - name: symbol
	    type: String
	  - name: amount
	    type: Integer

RefundScheduled notification. Produced by Unstake, due is a timestamp in
milliseconds from which Refund can succeed. Amount is the whole refunding
amount of the symbol.

	RefundScheduled:
	  - name: owner
	    type: Hash160
	  - name: symbol
	    type: String
	  - name: amount
	    type: Integer
	  - name: due
	    type: Integer

RefundCancelled notification. Produced by Unstake when the owner already had
a scheduled refund.

	RefundCancelled:
	  - name: owner
	    type: Hash160
	  - name: symbol
	    type: String

Refund notification. Produced when refunding funds are released.

	Refund:
	  - name: owner
	    type: Hash160
	  - name: symbol
	    type: String
	  - name: amount
	    type: Integer
*/
package token

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'o' -> interop.Hash160
   contract owner allowed to register symbols
 - 'd' -> int
   refund delay in milliseconds, missing value means 7 days
 - 's' + <symbol> -> std.Serialize(CurrencyStats)
   symbol registry
 - 'a' + <owner> + <symbol> -> std.Serialize(Account)
   balances
 - 'k' + <owner> + <symbol> -> std.Serialize(Lock)
   staked funds
 - 'r' + <owner> + <symbol> -> std.Serialize(Lock)
   refunding funds
 - 'q' + <owner> -> std.Serialize(RefundRequest)
   pending refund of the owner

# Invariants
For every owner and symbol, staked and refunding funds never exceed the
balance. Stake and refund records never touch the balance itself, so the sum
of all balances of the symbol equals its supply.
*/
