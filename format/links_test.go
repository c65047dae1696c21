package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/docmarkup/dom"
	"go.jacobcolvin.com/docmarkup/format"
)

func TestTemplateLinkProvider(t *testing.T) {
	t.Parallel()

	lp := format.TemplateLinkProvider{
		Plugin:     "https://docs/{namespace}/{collection}/{name}_{type}.html",
		OptionLike: "https://docs/{fqcn}_{type}.html#{anchor}?k={kind}&p={path}&e={entrypoint}",
	}
	module := dom.PluginIdentifier{FQCN: "ns.coll.sub.mod", Type: "module"}
	role := dom.PluginIdentifier{FQCN: "ns.coll.r", Type: "role"}

	tcs := map[string]struct {
		got  string
		want string
	}{
		"plugin": {
			got:  lp.PluginLink(module),
			want: "https://docs/ns/coll/sub.mod_module.html",
		},
		"option": {
			got:  lp.PluginOptionLikeLink(module, "", format.KindOption, []string{"a", "b"}, false),
			want: "https://docs/ns.coll.sub.mod_module.html#parameter-a/b?k=option&p=a/b&e=",
		},
		"return value": {
			got:  lp.PluginOptionLikeLink(module, "", format.KindReturnValue, []string{"a"}, true),
			want: "https://docs/ns.coll.sub.mod_module.html#return-a?k=retval&p=a&e=",
		},
		"role entrypoint": {
			got:  lp.PluginOptionLikeLink(role, "main", format.KindOption, []string{"x"}, false),
			want: "https://docs/ns.coll.r_role.html#main--parameter-x?k=option&p=x&e=main",
		},
		"empty plugin template": {
			got:  format.TemplateLinkProvider{}.PluginLink(module),
			want: "",
		},
		"empty option template": {
			got:  format.TemplateLinkProvider{}.PluginOptionLikeLink(module, "", format.KindOption, []string{"a"}, false),
			want: "",
		},
		"no links": {
			got:  format.NoLinks.PluginLink(module) + format.NoLinks.PluginOptionLikeLink(module, "", format.KindOption, nil, true),
			want: "",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.got)
		})
	}
}
