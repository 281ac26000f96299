// Package concat merges the contents of several build files into one.
//
// A Concat is created once from Options and then run against the Files map
// of a build. For every configured pattern, in order, it collects the
// contents of the matching entries of the map (removing them unless
// KeepConcatenated is set) followed by the contents of matching files found
// on disk under the configured search paths. Everything collected is joined
// with the separator, which also terminates the result, and stored under the
// output path.
//
//	c, err := concat.New(concat.Options{
//		Output: "js/app.js",
//		Files:  []string{"js/jquery.js", "js/**/*.js"},
//	})
//	if err != nil {
//		return err
//	}
//	err = c.Run(ctx, files, site)
//
// Files under the reserved src/ directory of the site root are never read
// from disk: the build already loaded them into the map.
package concat
