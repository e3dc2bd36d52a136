package xcode

import (
	"strings"

	"github.com/syssam/pbxgen/hash"
	"github.com/syssam/pbxgen/plist"
)

// Object format versions at or below this predate per-input-file listing
// and per-architecture run control for custom build rules (both arrived
// with Xcode 11, object version 52), so those fields must not be emitted
// for older targets.
const buildRuleInputFilesVersion = 52

// BuildRule is a custom tool rule: files matching a pattern or a
// classified type are run through an external script that declares its
// output files.
type BuildRule struct {
	*plist.Dict

	compilerSpec   *plist.Entry
	filePatterns   *plist.Entry
	fileType       *plist.Entry
	inputFiles     *plist.Array
	isEditable     *plist.Entry
	outputFiles    *plist.Array
	runOncePerArch *plist.Entry
	script         *plist.Entry
}

// NewBuildRule creates a custom build rule. A pattern given without an
// explicit type matches through the pattern proxy type. The script gains a
// trailing escaped newline when missing, since Xcode requires scripts to
// end with one.
func NewBuildRule(opts ...Option) *BuildRule {
	c := applyOptions(opts)

	ruleType := c.ruleType
	if c.pattern != "" && ruleType == "" {
		ruleType = "pattern.proxy"
	}
	uuid := c.uuid
	if uuid == "" {
		uuid = hash.CalcUUID("PBXBuildRule" + c.pattern + ruleType)
	}

	r := &BuildRule{
		Dict: plist.NewDict(uuid,
			plist.WithUUID(uuid),
			plist.WithComment("PBXBuildRule"),
			plist.WithISA("PBXBuildRule")),
	}

	// The default rule is a shell script.
	r.compilerSpec = r.AddEntry("compilerSpec", "com.apple.compilers.proxy.script")
	r.filePatterns = r.AddEntry("filePatterns", c.pattern)
	r.fileType = r.AddEntry("fileType", ruleType)

	r.inputFiles = plist.NewArray("inputFiles")
	r.Add(r.inputFiles)
	r.inputFiles.AddString("${INPUT_FILE_PATH}")

	// Not a built-in rule, so it stays editable.
	r.isEditable = r.AddEntry("isEditable", "1")

	r.outputFiles = plist.NewArray("outputFiles")
	r.Add(r.outputFiles)
	for _, f := range c.outputFiles {
		r.outputFiles.AddString(f)
	}

	// Build once, not once per CPU architecture.
	r.runOncePerArch = r.AddEntry("runOncePerArchitecture", "0")

	// The terminator is the escaped form, it lives inside the quoted
	// script string.
	script := c.script
	if script != "" && !strings.HasSuffix(script, `\n`) {
		script += `\n`
	}
	r.script = r.AddEntry("script", script)
	return r
}

// Generate renders the rule, first suppressing the fields the target
// format version cannot express. The check happens at render time because
// a rule can be constructed before its eventual project root is known.
func (r *BuildRule) Generate(ll *plist.LineList, ctx *plist.Context, indent int) {
	if ctx != nil && ctx.ObjectVersion <= buildRuleInputFilesVersion {
		r.inputFiles.SetEnabled(false)
		r.runOncePerArch.SetEnabled(false)
	}
	r.Dict.Generate(ll, ctx, indent)
}
