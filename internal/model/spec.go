package model

// Version is the released version of the launcher, set here and stamped
// into release binaries by the build workflow.
const Version = "1.2.0"

// RunSpec holds the validated user inputs for a single launch.
type RunSpec struct {
	VCF        string   // Path to a VCF/VCF.gz genotype file (mutually exclusive with Bfile)
	Bfile      string   // PLINK bed/bim/fam prefix, passed without extension
	Model      string   // Path to the PGS model file
	OutDir     string   // Host directory that receives the results
	MinOverlap string   // Minimum model/genotype variant overlap, forwarded verbatim
	Extra      []string // Unrecognized arguments forwarded to the container tool as-is
}

// GenotypeFlag returns the flag name the container tool expects for the
// genotype input that was supplied.
func (s RunSpec) GenotypeFlag() string {
	if s.Bfile != "" {
		return "--bfile"
	}
	return "--vcf"
}

// GenotypePath returns whichever genotype input was supplied.
func (s RunSpec) GenotypePath() string {
	if s.Bfile != "" {
		return s.Bfile
	}
	return s.VCF
}
