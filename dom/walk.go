package dom

import "fmt"

// Walker receives the parts of a paragraph, one method per part type.
type Walker interface {
	ProcessError(part ErrorPart)
	ProcessBold(part BoldPart)
	ProcessCode(part CodePart)
	ProcessHorizontalLine(part HorizontalLinePart)
	ProcessItalic(part ItalicPart)
	ProcessLink(part LinkPart)
	ProcessModule(part ModulePart)
	ProcessRSTRef(part RSTRefPart)
	ProcessURL(part URLPart)
	ProcessText(part TextPart)
	ProcessEnvVariable(part EnvVariablePart)
	ProcessOptionName(part OptionNamePart)
	ProcessOptionValue(part OptionValuePart)
	ProcessPlugin(part PluginPart)
	ProcessReturnValue(part ReturnValuePart)
}

// NoopWalker implements [Walker] with methods that do nothing. Embed it to
// handle only some part types.
type NoopWalker struct{}

func (NoopWalker) ProcessError(ErrorPart)                   {}
func (NoopWalker) ProcessBold(BoldPart)                     {}
func (NoopWalker) ProcessCode(CodePart)                     {}
func (NoopWalker) ProcessHorizontalLine(HorizontalLinePart) {}
func (NoopWalker) ProcessItalic(ItalicPart)                 {}
func (NoopWalker) ProcessLink(LinkPart)                     {}
func (NoopWalker) ProcessModule(ModulePart)                 {}
func (NoopWalker) ProcessRSTRef(RSTRefPart)                 {}
func (NoopWalker) ProcessURL(URLPart)                       {}
func (NoopWalker) ProcessText(TextPart)                     {}
func (NoopWalker) ProcessEnvVariable(EnvVariablePart)       {}
func (NoopWalker) ProcessOptionName(OptionNamePart)         {}
func (NoopWalker) ProcessOptionValue(OptionValuePart)       {}
func (NoopWalker) ProcessPlugin(PluginPart)                 {}
func (NoopWalker) ProcessReturnValue(ReturnValuePart)       {}

// Walk calls the method of w matching each part of paragraph, in order.
// It panics on a part type defined outside this package.
func Walk(paragraph Paragraph, w Walker) {
	for _, part := range paragraph {
		switch p := part.(type) {
		case ErrorPart:
			w.ProcessError(p)
		case BoldPart:
			w.ProcessBold(p)
		case CodePart:
			w.ProcessCode(p)
		case HorizontalLinePart:
			w.ProcessHorizontalLine(p)
		case ItalicPart:
			w.ProcessItalic(p)
		case LinkPart:
			w.ProcessLink(p)
		case ModulePart:
			w.ProcessModule(p)
		case RSTRefPart:
			w.ProcessRSTRef(p)
		case URLPart:
			w.ProcessURL(p)
		case TextPart:
			w.ProcessText(p)
		case EnvVariablePart:
			w.ProcessEnvVariable(p)
		case OptionNamePart:
			w.ProcessOptionName(p)
		case OptionValuePart:
			w.ProcessOptionValue(p)
		case PluginPart:
			w.ProcessPlugin(p)
		case ReturnValuePart:
			w.ProcessReturnValue(p)
		default:
			panic(fmt.Sprintf("dom: unknown part type %T", part))
		}
	}
}
