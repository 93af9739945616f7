package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-sh/internal/config"
	"github.com/Faultbox/midgard-sh/internal/lighting"
	gmath "github.com/Faultbox/midgard-sh/pkg/math"
	"github.com/Faultbox/midgard-sh/pkg/sh"
)

func (env *cmdEnv) flagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

func (env *cmdEnv) order() int {
	return env.cfg.SH.Order
}

// coeffsFlag parses a required coefficient list flag.
func coeffsFlag(name, value string) ([]float64, error) {
	if value == "" {
		return nil, fmt.Errorf("-%s is required", name)
	}
	c, err := parseFloats(value)
	if err != nil {
		return nil, fmt.Errorf("-%s: %w", name, err)
	}
	return c, nil
}

func cmdEval(env *cmdEnv, args []string) error {
	fs := env.flagSet("eval")
	dirFlag := fs.String("dir", "0,0,1", "Direction x,y,z (normalized before use)")
	coeffsStr := fs.String("coeffs", "", "Coefficients of a function to evaluate; prints the basis when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dir, err := parseDir(*dirFlag)
	if err != nil {
		return fmt.Errorf("-dir: %w", err)
	}
	order := env.order()

	if *coeffsStr == "" {
		basis := make([]float64, sh.NumCoeffs(order))
		if err := sh.EvalDirection(basis, order, dir); err != nil {
			return err
		}
		env.log.Debug("evaluated basis", zap.Int("order", order), zap.Any("dir", dir))
		return env.out.print(field{"basis", basis})
	}

	coeffs, err := coeffsFlag("coeffs", *coeffsStr)
	if err != nil {
		return err
	}
	v, err := sh.Eval(order, coeffs, dir)
	if err != nil {
		return err
	}
	return env.out.print(field{"value", v})
}

// rotationSpec holds the mutually exclusive ways to name a rotation.
type rotationSpec struct {
	euler string  // x,y,z degrees
	axis  string  // x,y,z, with angle
	angle float64 // degrees
	quat  string  // x,y,z,w
}

// matrix builds the rotation selected by exactly one of -euler, -axis or -quat.
func (r rotationSpec) matrix() (gmath.Mat4, error) {
	set := 0
	for _, s := range []string{r.euler, r.axis, r.quat} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return gmath.Mat4{}, errors.New("exactly one of -euler, -axis or -quat is required")
	}

	switch {
	case r.euler != "":
		e, err := parseVec3(r.euler)
		if err != nil {
			return gmath.Mat4{}, fmt.Errorf("-euler: %w", err)
		}
		return gmath.RotateEuler(gmath.Radians(e.X), gmath.Radians(e.Y), gmath.Radians(e.Z)), nil
	case r.axis != "":
		a, err := parseVec3(r.axis)
		if err != nil {
			return gmath.Mat4{}, fmt.Errorf("-axis: %w", err)
		}
		if a.IsZero() {
			return gmath.Mat4{}, fmt.Errorf("-axis: %w", errZeroVector)
		}
		return gmath.RotateAxis(a.Normalize(), gmath.Radians(float32(r.angle))), nil
	default:
		q, err := parseFloats(r.quat)
		if err != nil {
			return gmath.Mat4{}, fmt.Errorf("-quat: %w", err)
		}
		if len(q) != 4 {
			return gmath.Mat4{}, fmt.Errorf("-quat: want 4 components, got %d", len(q))
		}
		if q[0] == 0 && q[1] == 0 && q[2] == 0 && q[3] == 0 {
			return gmath.Mat4{}, fmt.Errorf("-quat: %w", errZeroVector)
		}
		quat := gmath.Quat{X: float32(q[0]), Y: float32(q[1]), Z: float32(q[2]), W: float32(q[3])}
		return quat.ToMat4(), nil
	}
}

func cmdRotate(env *cmdEnv, args []string) error {
	fs := env.flagSet("rotate")
	coeffsStr := fs.String("coeffs", "", "Coefficients to rotate")
	euler := fs.String("euler", "", "Euler angles x,y,z in degrees; X is applied first, Z last")
	axis := fs.String("axis", "", "Rotation axis x,y,z")
	angle := fs.Float64("angle", 0, "Angle in degrees about -axis")
	quat := fs.String("quat", "", "Quaternion x,y,z,w (normalized before use)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src, err := coeffsFlag("coeffs", *coeffsStr)
	if err != nil {
		return err
	}
	m, err := rotationSpec{euler: *euler, axis: *axis, angle: *angle, quat: *quat}.matrix()
	if err != nil {
		return err
	}

	order := env.order()
	dst := make([]float64, sh.NumCoeffs(order))
	if err := sh.Rotate(dst, order, m.Rotation(), src); err != nil {
		return err
	}
	env.log.Debug("rotated", zap.Int("order", order), zap.Float32s("matrix", m[:]))
	return env.out.print(field{"coeffs", dst})
}

func cmdRotateZ(env *cmdEnv, args []string) error {
	fs := env.flagSet("rotatez")
	coeffsStr := fs.String("coeffs", "", "Coefficients to rotate")
	angle := fs.Float64("angle", 0, "Angle in degrees, counterclockwise seen from +Z")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src, err := coeffsFlag("coeffs", *coeffsStr)
	if err != nil {
		return err
	}

	order := env.order()
	dst := make([]float64, sh.NumCoeffs(order))
	if err := sh.RotateZ(dst, order, *angle*math.Pi/180, src); err != nil {
		return err
	}
	return env.out.print(field{"coeffs", dst})
}

func cmdProduct(env *cmdEnv, args []string) error {
	fs := env.flagSet("product")
	fStr := fs.String("f", "", "Coefficients of the first function")
	gStr := fs.String("g", "", "Coefficients of the second function")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := coeffsFlag("f", *fStr)
	if err != nil {
		return err
	}
	g, err := coeffsFlag("g", *gStr)
	if err != nil {
		return err
	}

	order := env.order()
	dst := make([]float64, sh.NumCoeffs(order))
	if err := sh.Multiply(dst, order, f, g); err != nil {
		return err
	}
	return env.out.print(field{"coeffs", dst})
}

func cmdLight(env *cmdEnv, args []string) error {
	fs := env.flagSet("light")
	kind := fs.String("kind", string(lighting.Directional), "Light kind: directional, sphere, cone or hemisphere")
	dirStr := fs.String("dir", "", "Direction towards the light x,y,z")
	sun := fs.String("sun", "", "Direction as longitude,latitude in degrees (instead of -dir)")
	posStr := fs.String("pos", "0,0,1", "Sphere center relative to the receiver x,y,z")
	radius := fs.Float64("radius", 1, "Sphere radius")
	angle := fs.Float64("angle", 30, "Cone half-angle in degrees")
	colorStr := fs.String("color", "1", "Color r,g,b or a single gray value")
	bottomStr := fs.String("bottom", "0", "Hemisphere lower color r,g,b")
	intensity := fs.Float64("intensity", 1, "Intensity multiplier")
	lambert := fs.Bool("lambert", false, "Convolve with the clamped cosine (diffuse exit radiance)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	light := lighting.Light{
		Kind:      lighting.Kind(*kind),
		Radius:    float32(*radius),
		Angle:     float32(*angle),
		Intensity: float32(*intensity),
	}
	var err error
	if light.Color, err = parseColor(*colorStr); err != nil {
		return fmt.Errorf("-color: %w", err)
	}
	if light.Bottom, err = parseColor(*bottomStr); err != nil {
		return fmt.Errorf("-bottom: %w", err)
	}
	if light.Position, err = parseVec3(*posStr); err != nil {
		return fmt.Errorf("-pos: %w", err)
	}
	if *dirStr != "" {
		if light.Direction, err = parseVec3(*dirStr); err != nil {
			return fmt.Errorf("-dir: %w", err)
		}
	}
	if *sun != "" {
		angles, err := parseFloats(*sun)
		if err != nil || len(angles) != 2 {
			return fmt.Errorf("-sun: want longitude,latitude, got %q", *sun)
		}
		light.Sun = &lighting.Sun{Longitude: angles[0], Latitude: angles[1]}
	}
	if light.Sun == nil && light.Direction.IsZero() {
		light.Direction = gmath.Vec3{Z: 1}
	}

	order := env.order()
	n := sh.NumCoeffs(order)
	r, g, b := make([]float64, n), make([]float64, n), make([]float64, n)
	if err := light.Project(order, r, g, b); err != nil {
		return err
	}
	if *lambert {
		for _, ch := range [][]float64{r, g, b} {
			if err := sh.ConvolveLambert(ch, order, ch); err != nil {
				return err
			}
		}
	}

	env.log.Debug("projected light", zap.Int("order", order), zap.Any("light", light))
	return env.out.print(field{"r", r}, field{"g", g}, field{"b", b})
}

func cmdBake(env *cmdEnv, args []string) error {
	fs := env.flagSet("bake")
	scenePath := fs.String("scene", "", "YAML file with a lights: list (default: scene.lights from the config)")
	normalStr := fs.String("normal", "", "Also print the diffuse color of a surface with this normal")
	euler := fs.String("euler", "", "Rotate the baked environment by Euler angles x,y,z in degrees")
	if err := fs.Parse(args); err != nil {
		return err
	}

	scene := env.cfg.Scene
	if *scenePath != "" {
		data, err := os.ReadFile(*scenePath)
		if err != nil {
			return err
		}
		scene = config.SceneConfig{}
		if err := yaml.Unmarshal(data, &scene); err != nil {
			return fmt.Errorf("parsing scene %s: %w", *scenePath, err)
		}
	}
	if len(scene.Lights) == 0 {
		return errors.New("scene has no lights")
	}

	envmap, err := lighting.NewEnvironment(env.order())
	if err != nil {
		return err
	}
	if err := envmap.SetLights(scene.Lights); err != nil {
		return err
	}
	if *euler != "" {
		m, err := rotationSpec{euler: *euler}.matrix()
		if err != nil {
			return err
		}
		if err := envmap.Rotate(m.Rotation()); err != nil {
			return err
		}
	}
	env.log.Info("baked environment", zap.Int("order", envmap.Order), zap.Int("lights", len(envmap.Lights)))

	fields := []field{{"r", envmap.R}, {"g", envmap.G}, {"b", envmap.B}}
	if *normalStr != "" {
		normal, err := parseDir(*normalStr)
		if err != nil {
			return fmt.Errorf("-normal: %w", err)
		}
		diffuse, err := envmap.Diffuse(normal)
		if err != nil {
			return err
		}
		fields = append(fields, field{"diffuse", diffuse})
	}
	return env.out.print(fields...)
}

func cmdInfo(env *cmdEnv, args []string) error {
	fs := env.flagSet("info")
	if err := fs.Parse(args); err != nil {
		return err
	}

	order := env.order()
	bands := make([]string, order)
	for l := 0; l < order; l++ {
		bands[l] = fmt.Sprintf("l=%d %d..%d", l, sh.Index(l, -l), sh.Index(l, l))
	}
	return env.out.print(
		field{"order", order},
		field{"coefficients", sh.NumCoeffs(order)},
		field{"bands", bands},
	)
}

func cmdConfig(env *cmdEnv, args []string) error {
	fs := env.flagSet("config")
	savePath := fs.String("save", "", "Write the effective config to this path")
	user := fs.Bool("user", false, "Write the effective config to the user config directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *savePath != "":
		if err := env.cfg.SaveTo(*savePath); err != nil {
			return err
		}
		env.log.Info("saved config", zap.String("path", *savePath))
	case *user:
		path, err := env.cfg.Save()
		if err != nil {
			return err
		}
		env.log.Info("saved config", zap.String("path", path))
	}

	data, err := env.cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = env.out.w.Write(data)
	return err
}
