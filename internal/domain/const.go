package domain

const (
	// DeployFeeHex is the fee in wei charged for a protocol deployment
	DeployFeeHex = "0x1A055690D9DB80000"

	// DeployTargetAddress is where deployment fees are sent
	DeployTargetAddress = "AeDB27Cc7AEe4Dc74c02CfCc80F71ffF7a3Dfe36"

	// HolderLimit is how many top holders the holder endpoint returns
	HolderLimit = 20
)
